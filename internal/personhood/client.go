// Package personhood forwards zero-knowledge personhood proofs to the cloud
// verifier.
package personhood

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stpnv0/StayEscrow/internal/domain"
)

type Config struct {
	BaseURL string
	AppID   string
	Timeout time.Duration
}

type Client struct {
	baseURL string
	appID   string
	client  *http.Client
}

func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://developer.worldcoin.org"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		appID:   cfg.AppID,
		client:  &http.Client{Timeout: timeout},
	}
}

type verifyRequest struct {
	NullifierHash     string `json:"nullifier_hash"`
	MerkleRoot        string `json:"merkle_root"`
	Proof             string `json:"proof"`
	VerificationLevel string `json:"verification_level"`
	Action            string `json:"action"`
	SignalHash        string `json:"signal_hash"`
}

// SignalHash maps signal into the proof field: keccak256(signal) >> 8.
func SignalHash(signal string) string {
	h := new(big.Int).SetBytes(crypto.Keccak256([]byte(signal)))
	h.Rsh(h, 8)
	return common.BigToHash(h).Hex()
}

// Verify returns the verifier's verdict. A rejected proof is a result with
// Success false; only transport and server failures are errors.
func (c *Client) Verify(ctx context.Context, proof domain.PersonhoodProof, action, signal string) (domain.PersonhoodResult, error) {
	if c.appID == "" {
		return domain.PersonhoodResult{}, fmt.Errorf("%w: personhood app id is not configured", domain.ErrVerifierUnavailable)
	}

	body, err := json.Marshal(verifyRequest{
		NullifierHash:     proof.NullifierHash,
		MerkleRoot:        proof.MerkleRoot,
		Proof:             proof.Proof,
		VerificationLevel: proof.VerificationLevel,
		Action:            action,
		SignalHash:        SignalHash(signal),
	})
	if err != nil {
		return domain.PersonhoodResult{}, err
	}

	reqURL := fmt.Sprintf("%s/api/v2/verify/%s", c.baseURL, url.PathEscape(c.appID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return domain.PersonhoodResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.PersonhoodResult{}, fmt.Errorf("%w: %v", domain.ErrVerifierUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return domain.PersonhoodResult{}, fmt.Errorf("%w: read body: %v", domain.ErrVerifierUnavailable, err)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return domain.PersonhoodResult{}, fmt.Errorf("%w: status %d", domain.ErrVerifierUnavailable, resp.StatusCode)
	}

	var res domain.PersonhoodResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return domain.PersonhoodResult{}, fmt.Errorf("%w: decode: %v", domain.ErrVerifierUnavailable, err)
	}
	res.Success = resp.StatusCode == http.StatusOK && res.Success
	return res, nil
}
