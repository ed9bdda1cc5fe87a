// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the survey record and the API response types.

# Response Record

ResponseRecord is one survey submission. JSON field names are camelCase
for compatibility with existing clients:

	wordsDescribeSelf, wordsDescribeDS        3 words each, max 24 chars
	confidenceStorytelling, confidenceAnalytics 1..10
	skills                                    1+ catalog skills
	competitionsJoined                        >= 0
	committees                                3 distinct ranked committees
	hometown, favoriteProvince                catalog provinces
	favoriteProvinceReason                    1..32 chars
	timestamp                                 set by the store

ID and Timestamp are assigned on write. Records are never updated.

# Validation

	if err := rec.Validate(catalog.Default()); err != nil {
		// err joins one *FieldError per violated constraint
	}

# Lenient Decoding

Stored documents are not always well formed. ResponseRecord.UnmarshalJSON
accepts numbers encoded as strings (empty string reads as 0), drops
non-string list elements and understands {"_seconds","_nanoseconds"}
timestamps. DecodeRecords turns any non-array body into an empty slice.

# Response Types

  - InterviewResponse: {success}
  - APIStatusResponse: {status, message}
  - StoreCheckResponse: {success, count}
  - ErrorResponse: {success: false, error}
*/
package models
