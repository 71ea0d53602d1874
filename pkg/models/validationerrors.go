// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"errors"
)

var (
	ValidationErrorEmptyPlayerID     = errors.New("player id cannot be empty")
	ValidationErrorDuplicatePlayer   = errors.New("player appears more than once in participants")
	ValidationErrorSamePlayerInPair  = errors.New("team cannot contain the same player twice")
	ValidationErrorPlayerInTwoTeams  = errors.New("player belongs to more than one fixed team")
	ValidationErrorNegativeMatches   = errors.New("number of matches cannot be negative")
	ValidationErrorUnknownFormat     = errors.New("unknown format")
	ValidationErrorUnknownMode       = errors.New("unknown mode")
	ValidationErrorEmptyCourtID      = errors.New("court id cannot be empty")
	ValidationErrorFixedTeamsSingles = errors.New("fixed teams cannot be used with singles format")
)

var validationErrorCodeMap = map[error]int{
	ValidationErrorEmptyPlayerID:     520101,
	ValidationErrorDuplicatePlayer:   520102,
	ValidationErrorSamePlayerInPair:  520103,
	ValidationErrorPlayerInTwoTeams:  520104,
	ValidationErrorNegativeMatches:   520105,
	ValidationErrorUnknownFormat:     520106,
	ValidationErrorUnknownMode:       520107,
	ValidationErrorEmptyCourtID:      520108,
	ValidationErrorFixedTeamsSingles: 520109,
}

// ValidationErrorCode returns a code for the error, unwrapping it when needed.
// It returns log.EIDValidationErrorV1 (20002) if the error is not registered in the map.
func ValidationErrorCode(err error) int {
	for err != nil {
		if code, ok := validationErrorCodeMap[err]; ok {
			return code
		}
		err = errors.Unwrap(err)
	}
	return 20002
}
