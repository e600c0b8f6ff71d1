package tools

import (
	"fmt"
	"time"

	"github.com/cloud-ru/mcp-financing-go/internal/export"
	"github.com/cloud-ru/mcp-financing-go/internal/financing"
)

func requiredFloat(params map[string]interface{}, key string) (float64, error) {
	value, ok := params[key].(float64)
	if !ok {
		return 0, fmt.Errorf("неверный параметр: %s", key)
	}
	return value, nil
}

func optionalFloat(params map[string]interface{}, key string) (float64, error) {
	raw, present := params[key]
	if !present || raw == nil {
		return 0, nil
	}
	value, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("неверный параметр: %s", key)
	}
	return value, nil
}

func optionalBool(params map[string]interface{}, key string) (bool, error) {
	raw, present := params[key]
	if !present || raw == nil {
		return false, nil
	}
	value, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("неверный параметр: %s", key)
	}
	return value, nil
}

func optionalString(params map[string]interface{}, key string) (string, error) {
	raw, present := params[key]
	if !present || raw == nil {
		return "", nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("неверный параметр: %s", key)
	}
	return value, nil
}

// parseParameters извлекает параметры финансирования из аргументов инструмента.
// Числа приходят из JSON, поэтому срок тоже ожидается как float64.
func parseParameters(params map[string]interface{}) (financing.Parameters, error) {
	var p financing.Parameters
	var err error

	if p.PropertyPrice, err = requiredFloat(params, "property_price"); err != nil {
		return p, err
	}
	if p.InterestRate, err = requiredFloat(params, "interest_rate"); err != nil {
		return p, err
	}
	termFloat, err := requiredFloat(params, "loan_term")
	if err != nil {
		return p, err
	}
	if termFloat != float64(int(termFloat)) {
		return p, fmt.Errorf("неверный параметр: loan_term, срок задается целым числом лет")
	}
	p.LoanTerm = int(termFloat)

	floats := []struct {
		key    string
		target *float64
	}{
		{"equity", &p.Equity},
		{"additional_costs", &p.AdditionalCosts},
		{"insurance_rate", &p.InsuranceRate},
		{"repayment_amount", &p.RepaymentAmount},
		{"maintenance_rate", &p.MaintenanceRate},
	}
	for _, f := range floats {
		if *f.target, err = optionalFloat(params, f.key); err != nil {
			return p, err
		}
	}
	if p.IncludeInsurance, err = optionalBool(params, "include_insurance"); err != nil {
		return p, err
	}
	if p.IncludeRepayment, err = optionalBool(params, "include_repayment"); err != nil {
		return p, err
	}
	return p, nil
}

func parseMetadata(params map[string]interface{}) (export.Metadata, error) {
	var meta export.Metadata
	var err error
	if meta.CustomerName, err = optionalString(params, "customer_name"); err != nil {
		return meta, err
	}
	if meta.BankName, err = optionalString(params, "bank_name"); err != nil {
		return meta, err
	}
	meta.CreatedAt = time.Now().UTC()
	return meta, nil
}
