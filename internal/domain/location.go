package domain

import "strings"

// ParseS3Location splits a storage location of the form
// "s3://bucket/key/path" (scheme optional) into bucket and key.
func ParseS3Location(location string) (bucket, key string, err error) {
	location = strings.TrimPrefix(location, "s3://")
	bucket, key, found := strings.Cut(location, "/")
	if !found || bucket == "" || key == "" {
		return "", "", ErrInvalidLocation
	}
	return bucket, key, nil
}
