package wardrobe

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const tagSeparator = "|"

// Defaults applied when a row leaves the field blank.
const (
	defaultWarmth    = 3
	defaultFormality = 3
)

// LoadCatalog reads the item catalog from a CSV file. The first row must be
// a header naming the columns (item_id, name, category, ...). Rows that
// cannot be decoded, or that miss an id or category, are skipped rather
// than failing the whole load.
func LoadCatalog(path string, logger *zap.Logger) (*Items, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()

	return ReadCatalog(file, logger)
}

// ReadCatalog decodes catalog rows from the reader. See LoadCatalog.
func ReadCatalog(r io.Reader, logger *zap.Logger) (*Items, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return &Items{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	for i := range header {
		header[i] = strings.TrimSpace(strings.ToLower(header[i]))
	}

	items := &Items{}
	line := 1
	for {
		record, err := reader.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			if logger != nil {
				logger.Debug("skipping unreadable catalog row", zap.Int("line", line), zap.Error(err))
			}
			continue
		}

		item, err := decodeRow(header, record)
		if err != nil {
			if logger != nil {
				logger.Debug("skipping malformed catalog row", zap.Int("line", line), zap.Error(err))
			}
			continue
		}

		if existing := items.FindByID(item.ID); existing != nil {
			if logger != nil {
				logger.Debug("skipping duplicate item id", zap.Int("line", line), zap.String("item_id", item.ID))
			}
			continue
		}

		items.Items = append(items.Items, item)
	}

	return items, nil
}

// decodeRow converts one CSV record into an Item via mapstructure with weak
// typing, so numeric columns arrive as strings and still decode.
func decodeRow(header, record []string) (*Item, error) {
	row := make(map[string]any, len(header))
	for idx, key := range header {
		if idx >= len(record) {
			break
		}
		value := strings.TrimSpace(record[idx])

		switch key {
		case "style_tags", "occasion_tags":
			row[key] = splitTags(value)
		default:
			if value != "" {
				row[key] = value
			}
		}
	}

	if _, ok := row["seasonality"]; !ok {
		row["seasonality"] = SeasonAll
	}
	if _, ok := row["warmth"]; !ok {
		row["warmth"] = defaultWarmth
	}
	if _, ok := row["formality"]; !ok {
		row["formality"] = defaultFormality
	}

	var item Item
	cfg := &mapstructure.DecoderConfig{
		Result:           &item,
		TagName:          "csv",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(row); err != nil {
		return nil, err
	}

	if item.ID == "" {
		return nil, fmt.Errorf("missing item_id")
	}
	if item.Category == "" {
		return nil, fmt.Errorf("missing category")
	}

	item.Category = strings.ToLower(item.Category)
	item.ColorFamily = strings.ToLower(item.ColorFamily)
	item.Seasonality = strings.ToLower(item.Seasonality)

	return &item, nil
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, tagSeparator)
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}
