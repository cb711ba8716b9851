package dynamo

import (
	"math"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/govilvipul/HealthcareCM/internal/domain"
)

// itemToNative converts a raw DynamoDB item into native Go values,
// normalizing every number attribute recursively.
func itemToNative(item map[string]types.AttributeValue) map[string]any {
	out := make(map[string]any, len(item))
	for k, av := range item {
		out[k] = attrToNative(av)
	}
	return out
}

func attrToNative(av types.AttributeValue) any {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		return parseNumber(v.Value)
	case *types.AttributeValueMemberBOOL:
		return v.Value
	case *types.AttributeValueMemberNULL:
		return nil
	case *types.AttributeValueMemberB:
		return v.Value
	case *types.AttributeValueMemberL:
		out := make([]any, 0, len(v.Value))
		for _, e := range v.Value {
			out = append(out, attrToNative(e))
		}
		return out
	case *types.AttributeValueMemberM:
		return itemToNative(v.Value)
	case *types.AttributeValueMemberSS:
		out := make([]any, 0, len(v.Value))
		for _, s := range v.Value {
			out = append(out, s)
		}
		return out
	case *types.AttributeValueMemberNS:
		out := make([]any, 0, len(v.Value))
		for _, n := range v.Value {
			out = append(out, parseNumber(n))
		}
		return out
	case *types.AttributeValueMemberBS:
		out := make([]any, 0, len(v.Value))
		for _, b := range v.Value {
			out = append(out, b)
		}
		return out
	default:
		return nil
	}
}

// parseNumber normalizes a DynamoDB number encoding: values with zero
// fractional part become int64, anything else float64. Unparseable input
// passes through as the raw string. This mirrors the store's own
// convention and is not a precision-preserving conversion.
func parseNumber(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	if f == math.Trunc(f) && math.Abs(f) < float64(math.MaxInt64) {
		return int64(f)
	}
	return f
}

// caseFromItem maps a normalized item onto the typed Case model, keeping
// the full item available for nested lookups.
func caseFromItem(item map[string]any) domain.Case {
	return domain.Case{
		CaseID:               asString(item["caseID"]),
		Status:               domain.CaseStatus(asString(item["status"])),
		Priority:             domain.CasePriority(asString(item["priority"])),
		DocumentType:         asString(item["documentType"]),
		PatientName:          asString(item["patientName"]),
		PatientDOB:           asString(item["patientDOB"]),
		MemberID:             asString(item["memberId"]),
		InsurancePlan:        asString(item["insurancePlan"]),
		PolicyNumber:         asString(item["policyNumber"]),
		ReferringProvider:    asString(item["referringProvider"]),
		ProviderNPI:          asString(item["providerNPI"]),
		Facility:             asString(item["facility"]),
		CPTCodes:             asStringSlice(item["cptCodes"]),
		ICD10Codes:           asStringSlice(item["icd10Codes"]),
		DiagnosisDescription: asString(item["diagnosisDescription"]),
		CaseSummary:          asString(item["caseSummary"]),
		ConfidenceScore:      asFloat(item["confidenceScore"]),
		FileName:             asString(item["fileName"]),
		S3Location:           asString(item["s3Location"]),
		UploadDate:           item["uploadDate"],
		Attributes:           item,
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	default:
		return 0
	}
}

func asStringSlice(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
