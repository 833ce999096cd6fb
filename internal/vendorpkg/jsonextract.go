package vendor

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"bizworth/internal/domain"
)

// canonicalSchema is the structural contract a vendor response must meet
// before it is accepted. Statements are open objects; the hard requirement
// is a periods array of strings.
const canonicalSchema = `{
  "type": "object",
  "required": ["periods"],
  "properties": {
    "companyName": {"type": ["string", "null"]},
    "currency": {"type": ["string", "null"]},
    "periods": {"type": "array", "items": {"type": "string"}},
    "profitLoss": {"type": ["object", "null"]},
    "assets": {"type": ["object", "null"]},
    "liabilities": {"type": ["object", "null"]},
    "equity": {"type": ["object", "null"]},
    "ownerCompensation": {"type": ["object", "null"]},
    "cashFlow": {"type": ["object", "null"]}
  }
}`

var compiledSchema = jsonschema.MustCompileString("canonical.json", canonicalSchema)

// DecodeCanonical turns free-form model output into canonical data. The
// whole response is tried as strict schema-validated JSON first; if that
// fails, a single fallback pass extracts the first balanced {...} span
// (repairing truncated or sloppy JSON when needed).
//
// Known fragility: a model that emits multiple JSON-like blocks can make
// the balanced-brace fallback pick the wrong one. This is inherent to
// recovering JSON from prose and is covered by tests rather than patched.
func DecodeCanonical(text string) (*domain.CanonicalFinancialData, error) {
	trimmed := strings.TrimSpace(text)

	if data, err := decodeStrict(trimmed); err == nil {
		return data, nil
	}

	span, ok := firstBalancedBrace(trimmed)
	if !ok {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	if data, err := decodeStrict(span); err == nil {
		return data, nil
	}

	repaired, err := jsonrepair.RepairJSON(span)
	if err != nil {
		return nil, fmt.Errorf("repairing response JSON: %w", err)
	}
	data, err := decodeStrict(repaired)
	if err != nil {
		return nil, fmt.Errorf("response does not match canonical schema: %w", err)
	}
	return data, nil
}

func decodeStrict(s string) (*domain.CanonicalFinancialData, error) {
	var raw interface{}
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, err
	}
	if err := compiledSchema.Validate(raw); err != nil {
		return nil, err
	}

	var data domain.CanonicalFinancialData
	if err := json.Unmarshal([]byte(s), &data); err != nil {
		return nil, err
	}
	normalizeDecoded(&data)
	return &data, nil
}

// normalizeDecoded allocates missing maps and drops orphan period keys the
// model invented, preserving the invariant that every per-period key is a
// member of Periods.
func normalizeDecoded(d *domain.CanonicalFinancialData) {
	if d.ProfitLoss == nil {
		d.ProfitLoss = make(map[string]*domain.ProfitLoss)
	}
	if d.Assets == nil {
		d.Assets = make(map[string]*domain.Assets)
	}
	if d.Liabilities == nil {
		d.Liabilities = make(map[string]*domain.Liabilities)
	}
	if d.Equity == nil {
		d.Equity = make(map[string]*domain.Equity)
	}
	if d.OwnerComp == nil {
		d.OwnerComp = make(map[string]*domain.OwnerComp)
	}
	if d.CashFlow == nil {
		d.CashFlow = make(map[string]*domain.CashFlow)
	}
	for period := range d.ProfitLoss {
		if !d.HasPeriod(period) {
			delete(d.ProfitLoss, period)
		}
	}
	for period := range d.Assets {
		if !d.HasPeriod(period) {
			delete(d.Assets, period)
		}
	}
	for period := range d.Liabilities {
		if !d.HasPeriod(period) {
			delete(d.Liabilities, period)
		}
	}
	for period := range d.Equity {
		if !d.HasPeriod(period) {
			delete(d.Equity, period)
		}
	}
	for period := range d.OwnerComp {
		if !d.HasPeriod(period) {
			delete(d.OwnerComp, period)
		}
	}
	for period := range d.CashFlow {
		if !d.HasPeriod(period) {
			delete(d.CashFlow, period)
		}
	}
}

// firstBalancedBrace returns the first balanced {...} span in s, tracking
// string literals so braces inside values do not unbalance the scan.
func firstBalancedBrace(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
