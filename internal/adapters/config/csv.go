package config

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// columnAliases maps accepted header spellings to a canonical column name.
var columnAliases = map[string]string{
	"id":           "id",
	"task":         "id",
	"task_id":      "id",
	"name":         "name",
	"title":        "name",
	"start":        "start",
	"start_date":   "start",
	"end":          "end",
	"end_date":     "end",
	"finish":       "end",
	"indent":       "indent",
	"level":        "indent",
	"order":        "order",
	"group":        "group",
	"summary":      "group",
	"progress":     "progress",
	"percent":      "progress",
	"assigned_to":  "assignedTo",
	"assignedto":   "assignedTo",
	"owner":        "assignedTo",
	"predecessors": "dependsOn",
	"depends_on":   "dependsOn",
	"dependson":    "dependsOn",
}

// decodeCSV reads a header row followed by one task per row.
// Predecessors are separated by ';' and may carry a relationship code as "T1:1".
func decodeCSV(r io.Reader) ([]TaskDTO, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read csv header")
	}

	columns := make(map[string]int, len(header))
	for i, col := range header {
		if name, ok := columnAliases[strings.ToLower(strings.TrimSpace(col))]; ok {
			if _, dup := columns[name]; !dup {
				columns[name] = i
			}
		}
	}
	if _, ok := columns["id"]; !ok {
		return nil, zerr.With(zerr.New("csv header has no id column"), "header", strings.Join(header, ","))
	}

	var dtos []TaskDTO
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, zerr.Wrap(err, "failed to read csv row")
		}

		dto, err := decodeRow(record, columns)
		if err != nil {
			return nil, zerr.With(err, "line", line)
		}
		dtos = append(dtos, dto)
	}

	return dtos, nil
}

func decodeRow(record []string, columns map[string]int) (TaskDTO, error) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	dto := TaskDTO{
		ID:         field("id"),
		Name:       field("name"),
		Start:      field("start"),
		End:        field("end"),
		AssignedTo: field("assignedTo"),
	}

	if s := field("indent"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return dto, zerr.With(zerr.Wrap(err, "invalid indent"), "value", s)
		}
		dto.Indent = n
	}
	if s := field("order"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return dto, zerr.With(zerr.Wrap(err, "invalid order"), "value", s)
		}
		dto.Order = &n
	}
	if s := field("group"); s != "" {
		b, err := parseBool(s)
		if err != nil {
			return dto, zerr.With(err, "value", s)
		}
		dto.Group = &b
	}
	if s := strings.TrimSuffix(field("progress"), "%"); s != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return dto, zerr.With(zerr.Wrap(err, "invalid progress"), "value", s)
		}
		dto.Progress = f
	}

	preds, err := parsePredecessors(field("dependsOn"))
	if err != nil {
		return dto, err
	}
	dto.DependsOn = preds

	return dto, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "y", "yes", "x":
		return true, nil
	case "n", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, zerr.Wrap(err, "invalid group flag")
	}
	return b, nil
}

func parsePredecessors(s string) ([]PredecessorDTO, error) {
	if s == "" {
		return nil, nil
	}

	var out []PredecessorDTO
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == ',' }) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, code, found := strings.Cut(part, ":")
		p := PredecessorDTO{ID: strings.TrimSpace(id)}
		if found {
			n, err := strconv.Atoi(strings.TrimSpace(code))
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "invalid relationship type"), "value", part)
			}
			p.Type = n
		}
		out = append(out, p)
	}
	return out, nil
}
