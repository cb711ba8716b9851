package dynamo

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"

	"github.com/govilvipul/HealthcareCM/internal/domain"
)

func TestParseNumber_IntegralBecomesInt(t *testing.T) {
	assert.Equal(t, int64(10), parseNumber("10"))
	assert.Equal(t, int64(10), parseNumber("10.0"))
	assert.Equal(t, int64(-3), parseNumber("-3"))
	assert.Equal(t, int64(0), parseNumber("0"))
}

func TestParseNumber_FractionalBecomesFloat(t *testing.T) {
	assert.Equal(t, 10.5, parseNumber("10.5"))
	assert.Equal(t, 0.92, parseNumber("0.92"))
}

func TestParseNumber_UnparseablePassesThrough(t *testing.T) {
	assert.Equal(t, "not-a-number", parseNumber("not-a-number"))
}

func TestAttrToNative_Scalars(t *testing.T) {
	assert.Equal(t, "text", attrToNative(&types.AttributeValueMemberS{Value: "text"}))
	assert.Equal(t, int64(42), attrToNative(&types.AttributeValueMemberN{Value: "42"}))
	assert.Equal(t, true, attrToNative(&types.AttributeValueMemberBOOL{Value: true}))
	assert.Nil(t, attrToNative(&types.AttributeValueMemberNULL{Value: true}))
}

func TestAttrToNative_NestedContainers(t *testing.T) {
	av := &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
		"keyFindings": &types.AttributeValueMemberL{Value: []types.AttributeValue{
			&types.AttributeValueMemberS{Value: "finding one"},
			&types.AttributeValueMemberN{Value: "2.5"},
		}},
	}}

	got := attrToNative(av)

	assert.Equal(t, map[string]any{
		"keyFindings": []any{"finding one", 2.5},
	}, got)
}

func TestAttrToNative_NumberSet(t *testing.T) {
	av := &types.AttributeValueMemberNS{Value: []string{"1", "2.5"}}
	assert.Equal(t, []any{int64(1), 2.5}, attrToNative(av))
}

func TestCaseFromItem_MapsTypedFields(t *testing.T) {
	item := itemToNative(map[string]types.AttributeValue{
		"caseID":          &types.AttributeValueMemberS{Value: "CASE-001"},
		"status":          &types.AttributeValueMemberS{Value: "PENDING_REVIEW"},
		"priority":        &types.AttributeValueMemberS{Value: "HIGH"},
		"documentType":    &types.AttributeValueMemberS{Value: "pre-auth"},
		"patientName":     &types.AttributeValueMemberS{Value: "Jane Smith"},
		"confidenceScore": &types.AttributeValueMemberN{Value: "0.92"},
		"cptCodes": &types.AttributeValueMemberL{Value: []types.AttributeValue{
			&types.AttributeValueMemberS{Value: "99213"},
		}},
		"uploadDate": &types.AttributeValueMemberN{Value: "1705314600"},
	})

	c := caseFromItem(item)

	assert.Equal(t, "CASE-001", c.CaseID)
	assert.Equal(t, domain.StatusPendingReview, c.Status)
	assert.Equal(t, domain.PriorityHigh, c.Priority)
	assert.Equal(t, "pre-auth", c.DocumentType)
	assert.Equal(t, "Jane Smith", c.PatientName)
	assert.Equal(t, 0.92, c.ConfidenceScore)
	assert.Equal(t, []string{"99213"}, c.CPTCodes)
	assert.Equal(t, int64(1705314600), c.UploadDate)
	assert.Equal(t, item, c.Attributes)
}

func TestCaseFromItem_IntegralConfidenceScore(t *testing.T) {
	item := itemToNative(map[string]types.AttributeValue{
		"caseID":          &types.AttributeValueMemberS{Value: "CASE-002"},
		"confidenceScore": &types.AttributeValueMemberN{Value: "1"},
	})

	c := caseFromItem(item)
	assert.Equal(t, 1.0, c.ConfidenceScore)
}

func TestCaseFromItem_MissingFieldsAreZero(t *testing.T) {
	c := caseFromItem(map[string]any{"caseID": "CASE-003"})

	assert.Equal(t, "CASE-003", c.CaseID)
	assert.Empty(t, c.PatientName)
	assert.Nil(t, c.CPTCodes)
	assert.Zero(t, c.ConfidenceScore)
	assert.Nil(t, c.UploadDate)
}
