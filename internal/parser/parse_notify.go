package parser

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/barleyrp/overlay/internal/model"
)

// ParseNotify parses a notify payload into a Notification. The delay field
// is in milliseconds; zero means "use the configured default". An unknown
// severity falls back to info.
func (p *Parser) ParseNotify(raw json.RawMessage) (model.Notification, error) {
	var obj struct {
		Type     string `json:"type"`
		Header   string `json:"header"`
		Text     string `json:"text"`
		AutoHide *bool  `json:"autohide"`
		Delay    int    `json:"delay"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return model.Notification{}, fmt.Errorf("error unmarshalling notify: %w", err)
	}
	if obj.Text == "" && obj.Header == "" {
		return model.Notification{}, fmt.Errorf("notify payload has no header or text")
	}

	severity := model.Severity(obj.Type)
	if !model.KnownSeverity(severity) {
		p.logger.Debug("Unknown notify severity, using info", "type", obj.Type)
		severity = model.SeverityInfo
	}

	autoHide := true
	if obj.AutoHide != nil {
		autoHide = *obj.AutoHide
	}

	return model.Notification{
		Severity: severity,
		Header:   obj.Header,
		Text:     obj.Text,
		AutoHide: autoHide,
		Delay:    time.Duration(obj.Delay) * time.Millisecond,
	}, nil
}
