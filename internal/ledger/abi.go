package ledger

const propertyRecordComponents = `[
	{"name":"id","type":"uint256"},
	{"name":"host","type":"address"},
	{"name":"name","type":"string"},
	{"name":"description","type":"string"},
	{"name":"location","type":"string"},
	{"name":"pricePerNight","type":"uint256"},
	{"name":"isActive","type":"bool"},
	{"name":"createdAt","type":"uint256"},
	{"name":"imageHash","type":"string"}
]`

const bookingRecordComponents = `[
	{"name":"id","type":"uint256"},
	{"name":"propertyId","type":"uint256"},
	{"name":"guest","type":"address"},
	{"name":"host","type":"address"},
	{"name":"checkInDate","type":"uint256"},
	{"name":"checkOutDate","type":"uint256"},
	{"name":"totalAmount","type":"uint256"},
	{"name":"platformFee","type":"uint256"},
	{"name":"hostAmount","type":"uint256"},
	{"name":"isConfirmed","type":"bool"},
	{"name":"isCancelled","type":"bool"},
	{"name":"fundsReleased","type":"bool"},
	{"name":"paymentReference","type":"string"}
]`

// PropertyHostingABI is the listing registry surface the service relies on.
const PropertyHostingABI = `[
	{"type":"function","name":"listProperty","stateMutability":"nonpayable",
	 "inputs":[
		{"name":"host","type":"address"},
		{"name":"name","type":"string"},
		{"name":"description","type":"string"},
		{"name":"location","type":"string"},
		{"name":"pricePerNight","type":"uint256"},
		{"name":"imageHash","type":"string"}],
	 "outputs":[{"name":"propertyId","type":"uint256"}]},
	{"type":"function","name":"getProperty","stateMutability":"view",
	 "inputs":[{"name":"propertyId","type":"uint256"}],
	 "outputs":[{"name":"","type":"tuple","components":` + propertyRecordComponents + `}]},
	{"type":"function","name":"getActiveProperties","stateMutability":"view",
	 "inputs":[],
	 "outputs":[{"name":"","type":"tuple[]","components":` + propertyRecordComponents + `}]},
	{"type":"event","name":"PropertyListed","anonymous":false,
	 "inputs":[
		{"name":"propertyId","type":"uint256","indexed":true},
		{"name":"host","type":"address","indexed":true},
		{"name":"pricePerNight","type":"uint256","indexed":false}]}
]`

// BookingEscrowABI holds bookings and the escrowed funds.
const BookingEscrowABI = `[
	{"type":"function","name":"createBooking","stateMutability":"nonpayable",
	 "inputs":[
		{"name":"propertyId","type":"uint256"},
		{"name":"guest","type":"address"},
		{"name":"checkInDate","type":"uint256"},
		{"name":"checkOutDate","type":"uint256"},
		{"name":"totalAmount","type":"uint256"},
		{"name":"paymentReference","type":"string"}],
	 "outputs":[{"name":"bookingId","type":"uint256"}]},
	{"type":"function","name":"getBooking","stateMutability":"view",
	 "inputs":[{"name":"bookingId","type":"uint256"}],
	 "outputs":[{"name":"","type":"tuple","components":` + bookingRecordComponents + `}]},
	{"type":"function","name":"getAllBookings","stateMutability":"view",
	 "inputs":[],
	 "outputs":[{"name":"","type":"tuple[]","components":` + bookingRecordComponents + `}]},
	{"type":"function","name":"cancelBooking","stateMutability":"nonpayable",
	 "inputs":[
		{"name":"bookingId","type":"uint256"},
		{"name":"reason","type":"string"}],
	 "outputs":[]},
	{"type":"function","name":"releaseFunds","stateMutability":"nonpayable",
	 "inputs":[{"name":"bookingId","type":"uint256"}],
	 "outputs":[]},
	{"type":"event","name":"BookingCreated","anonymous":false,
	 "inputs":[
		{"name":"bookingId","type":"uint256","indexed":true},
		{"name":"propertyId","type":"uint256","indexed":true},
		{"name":"guest","type":"address","indexed":true},
		{"name":"totalAmount","type":"uint256","indexed":false}]},
	{"type":"event","name":"BookingCancelled","anonymous":false,
	 "inputs":[
		{"name":"bookingId","type":"uint256","indexed":true},
		{"name":"reason","type":"string","indexed":false}]},
	{"type":"event","name":"FundsReleased","anonymous":false,
	 "inputs":[
		{"name":"bookingId","type":"uint256","indexed":true},
		{"name":"hostAmount","type":"uint256","indexed":false},
		{"name":"platformFee","type":"uint256","indexed":false}]}
]`

// StakingABI is the refundable deposit gate.
const StakingABI = `[
	{"type":"function","name":"stake","stateMutability":"payable",
	 "inputs":[{"name":"holder","type":"address"}],
	 "outputs":[]},
	{"type":"function","name":"isStaked","stateMutability":"view",
	 "inputs":[{"name":"holder","type":"address"}],
	 "outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"stakes","stateMutability":"view",
	 "inputs":[{"name":"holder","type":"address"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"event","name":"Staked","anonymous":false,
	 "inputs":[
		{"name":"holder","type":"address","indexed":true},
		{"name":"amount","type":"uint256","indexed":false}]}
]`

// DisputeResolutionABI accepts dispute filings. Resolution happens on-chain.
const DisputeResolutionABI = `[
	{"type":"function","name":"fileDispute","stateMutability":"nonpayable",
	 "inputs":[
		{"name":"bookingId","type":"uint256"},
		{"name":"initiator","type":"address"},
		{"name":"isGuestDispute","type":"bool"},
		{"name":"reason","type":"string"},
		{"name":"evidence","type":"string"}],
	 "outputs":[{"name":"disputeId","type":"uint256"}]},
	{"type":"event","name":"DisputeFiled","anonymous":false,
	 "inputs":[
		{"name":"disputeId","type":"uint256","indexed":true},
		{"name":"bookingId","type":"uint256","indexed":true},
		{"name":"initiator","type":"address","indexed":true},
		{"name":"isGuestDispute","type":"bool","indexed":false}]}
]`

// ERC1271ABI is the contract-wallet signature check.
const ERC1271ABI = `[
	{"type":"function","name":"isValidSignature","stateMutability":"view",
	 "inputs":[
		{"name":"hash","type":"bytes32"},
		{"name":"signature","type":"bytes"}],
	 "outputs":[{"name":"magicValue","type":"bytes4"}]}
]`
