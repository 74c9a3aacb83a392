package render

import (
	"encoding/json"

	"github.com/syntax-framework/statics/manifest"
)

type jsonRecord struct {
	Ref      string   `json:"ref"`
	Scope    []string `json:"scope"`
	Ident    string   `json:"ident"`
	FileName string   `json:"fileName"`
	Name     string   `json:"name"`
	Mime     string   `json:"mime"`
	Hash     string   `json:"hash"`
	Size     int64    `json:"size"`
}

type jsonManifest struct {
	Generator string       `json:"generator"`
	Records   []jsonRecord `json:"records"`
}

// renderJson the flat index as a JSON document, with each record's namespace path
func renderJson(m *manifest.Manifest, opts Options) ([]byte, error) {
	doc := jsonManifest{Generator: opts.Generator, Records: make([]jsonRecord, 0, len(m.Index))}
	for _, record := range m.Index {
		scope := record.Scope
		if scope == nil {
			scope = []string{}
		}
		doc.Records = append(doc.Records, jsonRecord{
			Ref:      record.Ref().String(),
			Scope:    scope,
			Ident:    record.Ident,
			FileName: record.FileName,
			Name:     record.Name,
			Mime:     record.Mime,
			Hash:     record.Hash,
			Size:     record.Size,
		})
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errorInvalid("json", err)
	}
	return append(out, '\n'), nil
}
