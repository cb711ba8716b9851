package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/govilvipul/HealthcareCM/internal/domain"
)

func TestParseS3Location(t *testing.T) {
	bucket, key, err := domain.ParseS3Location("s3://case-docs/2024/preauth_smith.pdf")
	assert.NoError(t, err)
	assert.Equal(t, "case-docs", bucket)
	assert.Equal(t, "2024/preauth_smith.pdf", key)
}

func TestParseS3Location_SchemeOptional(t *testing.T) {
	bucket, key, err := domain.ParseS3Location("case-docs/scan.pdf")
	assert.NoError(t, err)
	assert.Equal(t, "case-docs", bucket)
	assert.Equal(t, "scan.pdf", key)
}

func TestParseS3Location_Invalid(t *testing.T) {
	for _, loc := range []string{"", "s3://", "s3://bucket-only", "s3://bucket/"} {
		_, _, err := domain.ParseS3Location(loc)
		assert.ErrorIs(t, err, domain.ErrInvalidLocation, "location %q", loc)
	}
}
