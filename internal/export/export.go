// Package export формирует документы (PDF, Excel, HTML-график) из готового
// результата расчета финансирования.
package export

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cloud-ru/mcp-financing-go/internal/financing"
)

// ErrUnsupportedFormat возвращается для неизвестного формата экспорта
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Metadata - описательные данные документа
type Metadata struct {
	CustomerName string    `json:"customer_name"`
	BankName     string    `json:"bank_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// Snapshot - неизменяемый снимок расчета, передаваемый экспортеру
type Snapshot struct {
	Parameters financing.Parameters
	Result     *financing.Result
	Metadata   Metadata
}

// Document - сформированный файл для скачивания
type Document struct {
	ID          string `json:"id"`
	Format      string `json:"format"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

// Exporter формирует документ одного формата
type Exporter interface {
	Format() string
	Export(ctx context.Context, snap Snapshot) (*Document, error)
}

// Registry - набор экспортеров по формату
type Registry struct {
	exporters map[string]Exporter
}

// NewRegistry регистрирует переданные экспортеры
func NewRegistry(exporters ...Exporter) *Registry {
	r := &Registry{exporters: make(map[string]Exporter, len(exporters))}
	for _, e := range exporters {
		r.exporters[e.Format()] = e
	}
	return r
}

// DefaultRegistry содержит все встроенные форматы
func DefaultRegistry() *Registry {
	return NewRegistry(NewPDFExporter(), NewExcelExporter(), NewChartExporter())
}

// Get возвращает экспортер формата format
func (r *Registry) Get(format string) (Exporter, error) {
	e, ok := r.exporters[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return e, nil
}

// Formats возвращает отсортированный список форматов
func (r *Registry) Formats() []string {
	formats := make([]string, 0, len(r.exporters))
	for f := range r.exporters {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}

func newDocument(snap Snapshot, format, extension, contentType string, data []byte) *Document {
	return &Document{
		ID:          uuid.New().String(),
		Format:      format,
		Filename:    filename(snap.Metadata, extension),
		ContentType: contentType,
		Data:        data,
	}
}

func filename(meta Metadata, extension string) string {
	name := "financing"
	if meta.CustomerName != "" {
		name += "-" + slug(meta.CustomerName)
	}
	created := meta.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	return fmt.Sprintf("%s-%s.%s", name, created.Format("2006-01-02"), extension)
}

func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + " EUR"
}

func percent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + " %"
}

func validate(snap Snapshot) error {
	if snap.Result == nil {
		return errors.New("export: snapshot has no result")
	}
	return nil
}
