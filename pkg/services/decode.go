package services

import (
	"errors"
	"fmt"

	"scholar-portal/pkg/models"

	"github.com/tidwall/gjson"
)

var ErrMalformedPayload = errors.New("malformed payload")

// DecodePublications parses a getAllPublications response. A JSON null is an
// empty list; anything other than an array of objects is rejected.
func DecodePublications(body []byte) ([]models.Publication, error) {
	items, err := recordArray(body)
	if err != nil {
		return nil, err
	}
	pubs := make([]models.Publication, 0, len(items))
	for _, item := range items {
		pubs = append(pubs, models.Publication{
			ID:         item.Get("publication_id").String(),
			Status:     item.Get("status").String(),
			CiteAs:     item.Get("citeAs").String(),
			Proof:      item.Get("proofOfPublication").String(),
			Attributes: attributes(item),
		})
	}
	return pubs, nil
}

// DecodePatents parses a getPatents response.
func DecodePatents(body []byte) ([]models.Patent, error) {
	items, err := recordArray(body)
	if err != nil {
		return nil, err
	}
	patents := make([]models.Patent, 0, len(items))
	for _, item := range items {
		patents = append(patents, models.Patent{
			ID:             item.Get("patent_id").String(),
			Status:         item.Get("status").String(),
			InventionTitle: item.Get("inventionTitle").String(),
			NumOfInventors: int(item.Get("numOfInventors").Int()),
			Proof:          item.Get("proofOfPatent").String(),
			Attributes:     attributes(item),
		})
	}
	return patents, nil
}

func recordArray(body []byte) ([]gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedPayload)
	}
	res := gjson.ParseBytes(body)
	if res.Type == gjson.Null {
		return nil, nil
	}
	if !res.IsArray() {
		return nil, fmt.Errorf("%w: expected an array", ErrMalformedPayload)
	}
	items := res.Array()
	for i, item := range items {
		if !item.IsObject() {
			return nil, fmt.Errorf("%w: element %d is not an object", ErrMalformedPayload, i)
		}
	}
	return items, nil
}

func attributes(item gjson.Result) map[string]string {
	attrs := make(map[string]string)
	item.ForEach(func(key, value gjson.Result) bool {
		if s, ok := truthy(value); ok {
			attrs[key.String()] = s
		}
		return true
	})
	return attrs
}

// truthy mirrors the "present means shown" rule of the record pages: empty
// strings, zero, false and null are absent.
func truthy(v gjson.Result) (string, bool) {
	switch v.Type {
	case gjson.String:
		return v.Str, v.Str != ""
	case gjson.Number:
		return v.String(), v.Num != 0
	case gjson.True:
		return "true", true
	case gjson.JSON:
		return v.Raw, true
	default:
		return "", false
	}
}
