package utils

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var hexPayload = regexp.MustCompile(`^[0-9A-Fa-f]+$`)

// TablePayload is what a table QR code carries: the outlet and the table it
// is printed for.
type TablePayload struct {
	OutletID   string
	OutletName string
	TableLabel string
}

// DecodeTablePayload reads the QR content printed on a table. The content is a
// JSON object {"id","outlet","table"}, either raw or hex encoded.
func DecodeTablePayload(raw string) (*TablePayload, error) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return nil, errors.New("empty QR payload")
	}

	if hexPayload.MatchString(content) {
		decoded, err := hex.DecodeString(content)
		if err != nil {
			return nil, fmt.Errorf("invalid hex QR payload: %w", err)
		}
		content = string(decoded)
	}

	var body struct {
		ID     json.RawMessage `json:"id"`
		Outlet string          `json:"outlet"`
		Table  string          `json:"table"`
	}
	if err := json.Unmarshal([]byte(content), &body); err != nil {
		return nil, fmt.Errorf("invalid QR payload: %w", err)
	}

	outletID := strings.Trim(string(body.ID), `"`)
	if outletID == "" || outletID == "null" {
		return nil, errors.New("QR payload has no outlet id")
	}
	if body.Outlet == "" || body.Table == "" {
		return nil, errors.New("QR payload must name an outlet and a table")
	}

	return &TablePayload{
		OutletID:   outletID,
		OutletName: body.Outlet,
		TableLabel: "Table " + body.Table,
	}, nil
}
