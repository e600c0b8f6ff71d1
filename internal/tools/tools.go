package tools

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/cloud-ru/mcp-financing-go/internal/export"
	"github.com/cloud-ru/mcp-financing-go/internal/financing"
	"github.com/cloud-ru/mcp-financing-go/internal/metrics"
	"github.com/cloud-ru/mcp-financing-go/internal/service"
)

const (
	FinancingScheduleTool = "financing_schedule"
	CompareRepaymentTool  = "compare_extra_repayment"
	FinancingExportTool   = "financing_export"
)

// ErrInvalidArguments - аргументы инструмента не прошли разбор или проверку
var ErrInvalidArguments = errors.New("неверные параметры")

// ToolHandler представляет обработчик инструмента MCP
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// Registry возвращает все инструменты сервиса по имени
func Registry(svc *service.FinancingService, tracer trace.Tracer) map[string]ToolHandler {
	return map[string]ToolHandler{
		FinancingScheduleTool: FinancingScheduleHandler(svc, tracer),
		CompareRepaymentTool:  CompareRepaymentHandler(svc, tracer),
		FinancingExportTool:   FinancingExportHandler(svc, tracer),
	}
}

// Names возвращает отсортированные имена инструментов
func Names(registry map[string]ToolHandler) []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// call оборачивает вызов инструмента спаном и метриками по исходу
type call struct {
	tool string
	span trace.Span
}

func startCall(ctx context.Context, tracer trace.Tracer, tool string) (context.Context, *call) {
	ctx, span := tracer.Start(ctx, tool)
	metrics.APICalls.WithLabelValues("mcp", tool, "started").Inc()
	return ctx, &call{tool: tool, span: span}
}

func (c *call) validationFailed(err error) error {
	c.span.SetAttributes(attribute.String("error", "validation_error"))
	metrics.ToolCalls.WithLabelValues(c.tool, "validation_error").Inc()
	metrics.CalculationErrors.WithLabelValues(c.tool, "validation").Inc()
	metrics.APICalls.WithLabelValues("mcp", c.tool, "error").Inc()
	return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
}

func (c *call) calculationFailed(err error) error {
	c.span.SetAttributes(attribute.String("error", "calculation_error"))
	metrics.ToolCalls.WithLabelValues(c.tool, "error").Inc()
	metrics.CalculationErrors.WithLabelValues(c.tool, "calculation").Inc()
	metrics.APICalls.WithLabelValues("mcp", c.tool, "error").Inc()
	return fmt.Errorf("ошибка при выполнении расчета: %w", err)
}

// failed выбирает тип ошибки: нарушение параметров или сбой расчета
func (c *call) failed(err error) error {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) || errors.Is(err, export.ErrUnsupportedFormat) {
		return c.validationFailed(err)
	}
	return c.calculationFailed(err)
}

func (c *call) succeeded(attrs ...attribute.KeyValue) {
	c.span.SetAttributes(append(attrs, attribute.Bool("success", true))...)
	metrics.ToolCalls.WithLabelValues(c.tool, "success").Inc()
	metrics.APICalls.WithLabelValues("mcp", c.tool, "success").Inc()
}

func (c *call) end() {
	c.span.End()
}

func parametersAttributes(p financing.Parameters) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Float64("property_price", p.PropertyPrice),
		attribute.Float64("loan_amount", p.LoanAmount()),
		attribute.Float64("interest_rate", p.InterestRate),
		attribute.Int("loan_term", p.LoanTerm),
		attribute.Bool("include_repayment", p.IncludeRepayment),
	}
}

// FinancingScheduleHandler обрабатывает запрос на расчет графика финансирования
func FinancingScheduleHandler(svc *service.FinancingService, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		ctx, c := startCall(ctx, tracer, FinancingScheduleTool)
		defer c.end()

		p, err := parseParameters(params)
		if err != nil {
			return nil, c.validationFailed(err)
		}
		c.span.SetAttributes(parametersAttributes(p)...)

		result, cached, err := svc.Calculate(ctx, p)
		if err != nil {
			return nil, c.failed(err)
		}

		c.succeeded(
			attribute.Bool("cached", cached),
			attribute.Float64("monthly_payment", result.MonthlyPayment),
			attribute.Int("months", result.Months),
		)
		return result, nil
	}
}

// CompareRepaymentHandler обрабатывает запрос на сравнение графиков с досрочным погашением и без него
func CompareRepaymentHandler(svc *service.FinancingService, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		ctx, c := startCall(ctx, tracer, CompareRepaymentTool)
		defer c.end()

		p, err := parseParameters(params)
		if err != nil {
			return nil, c.validationFailed(err)
		}
		c.span.SetAttributes(parametersAttributes(p)...)

		comparison, err := svc.Compare(ctx, p)
		if err != nil {
			return nil, c.failed(err)
		}

		c.succeeded(
			attribute.Int("months_saved", comparison.MonthsSaved),
			attribute.Float64("interest_saved", comparison.InterestSaved),
		)
		return comparison, nil
	}
}

// FinancingExportHandler обрабатывает запрос на экспорт расчета в документ
func FinancingExportHandler(svc *service.FinancingService, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		ctx, c := startCall(ctx, tracer, FinancingExportTool)
		defer c.end()

		p, err := parseParameters(params)
		if err != nil {
			return nil, c.validationFailed(err)
		}
		meta, err := parseMetadata(params)
		if err != nil {
			return nil, c.validationFailed(err)
		}
		format, err := optionalString(params, "format")
		if err != nil {
			return nil, c.validationFailed(err)
		}
		if format == "" {
			format = "pdf"
		}
		c.span.SetAttributes(append(parametersAttributes(p), attribute.String("format", format))...)

		doc, err := svc.Export(ctx, p, meta, format)
		if err != nil {
			return nil, c.failed(err)
		}

		c.succeeded(
			attribute.String("document_id", doc.ID),
			attribute.Int("bytes", len(doc.Data)),
		)
		return doc, nil
	}
}
