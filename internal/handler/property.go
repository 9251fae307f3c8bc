package handler

import (
	"net/http"
	"strings"

	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/stpnv0/StayEscrow/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListProperty(c *ginext.Context) {
	var req dto.ListPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	price, err := domain.ParseTokenAmount(req.PricePerNight)
	if err != nil {
		h.handleError(c, err)
		return
	}

	rcpt, err := h.property.List(c.Request.Context(), sessionFrom(c), domain.CreatePropertyInput{
		Name:           req.Name,
		Description:    req.Description,
		Location:       req.Location,
		PricePerNight:  price,
		ImageReference: req.ImageReference,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ListPropertyResponse{
		Success:         true,
		PropertyID:      rcpt.ID,
		TransactionHash: rcpt.TxHash.Hex(),
	})
}

func (h *Handler) GetProperties(c *ginext.Context) {
	props, err := h.property.ListActive(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PropertyResponse, 0, len(props))
	for _, p := range props {
		resp = append(resp, dto.ToPropertyResponse(p))
	}
	c.JSON(http.StatusOK, dto.PropertiesResponse{Success: true, Properties: resp})
}

func (h *Handler) GetProperty(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		badRequest(c, "invalid property id")
		return
	}

	p, err := h.property.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PropertyDetailsResponse{Success: true, Property: dto.ToPropertyResponse(p)})
}

func (h *Handler) UploadImage(c *ginext.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxUploadBytes+(64<<10))

	fh, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "file is required")
		return
	}
	if fh.Size > h.cfg.MaxUploadBytes {
		badRequest(c, "file is too large")
		return
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		badRequest(c, "only image uploads are accepted")
		return
	}

	f, err := fh.Open()
	if err != nil {
		badRequest(c, "cannot read file")
		return
	}
	defer f.Close()

	cid, err := h.property.UploadImage(c.Request.Context(), fh.Filename, f)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UploadImageResponse{Success: true, CID: cid})
}
