package repository

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(raw string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, raw)
	return t
}

// expiryFrom is the epoch second DynamoDB TTL compares against. A zero base
// time counts from now.
func expiryFrom(base time.Time, ttl time.Duration) int64 {
	if base.IsZero() {
		base = time.Now()
	}
	return base.Add(ttl).Unix()
}
