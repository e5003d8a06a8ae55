package db

import (
	"embed"
	"strings"
)

//go:embed schema/*.sql
var schemaFS embed.FS

func statements(name string) ([]string, error) {
	b, err := schemaFS.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, s := range strings.Split(string(b), ";") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}
