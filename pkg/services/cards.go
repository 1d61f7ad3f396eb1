package services

import (
	"strconv"
	"strings"

	"scholar-portal/pkg/models"
)

// CardBuilder turns records into the detail lines of their cards.
type CardBuilder struct {
	layout    *models.CardLayout
	proofHost string
}

func NewCardBuilder(layout *models.CardLayout, proofHost string) *CardBuilder {
	return &CardBuilder{layout: layout, proofHost: proofHost}
}

func (b *CardBuilder) PublicationDetails(p models.Publication) []models.Detail {
	return b.details(b.layout.Publication, p.Attributes)
}

func (b *CardBuilder) PatentDetails(p models.Patent) []models.Detail {
	return b.details(b.layout.Patent, p.Attributes)
}

func (b *CardBuilder) details(fields []models.Field, attrs map[string]string) []models.Detail {
	var out []models.Detail
	for _, f := range fields {
		v, ok := attrs[f.Name]
		if !ok || v == "" {
			continue
		}
		d := models.Detail{Label: f.Label, Value: v, Kind: "text"}
		switch f.Widget {
		case models.WidgetLink:
			d.Kind, d.URL = "link", v
		case models.WidgetFile:
			d.Kind, d.Value, d.URL = "link", "View Proof", ResolveProofURL(b.proofHost, v)
		case models.WidgetCount:
			n, err := strconv.ParseFloat(v, 64)
			if err != nil || n <= 0 {
				continue
			}
		case models.WidgetProof:
			d.Kind = models.ClassifyProof(v).String()
			d.URL = v
			if d.Kind == "link" {
				d.Value = "View Proof"
			}
		}
		out = append(out, d)
	}
	return out
}

// ResolveProofURL places a server-relative proof path on the proof file host.
// Absolute URLs pass through.
func ResolveProofURL(host, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(host, "/") + "/" + strings.TrimLeft(path, "/")
}
