package templatestore

import "errors"

var (
	ErrTemplatesNotFound            = errors.New("templatestore: no templates for notification type")
	ErrInvalidType                  = errors.New("templatestore: invalid notification type")
	ErrInvalidTemplates             = errors.New("templatestore: invalid template data")
	ErrFailedToParseRedisConnString = errors.New("templatestore: failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("templatestore: redis did not become ready within the given time period")
	ErrHealthcheckFailed            = errors.New("templatestore: redis healthcheck failed")
)
