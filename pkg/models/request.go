// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"fmt"

	validator "github.com/AccelByte/justice-input-validation-go"
	"github.com/elliotchance/pie/v2"
)

// Validate checks the structure of the request. Unfillable rounds are not an error,
// the scheduler reports them in the result instead.
func (r RoundRequest) Validate() error {
	if r.Format != "" && !pie.Contains(AvailableFormats, r.Format) {
		return fmt.Errorf("format %q: %w", r.Format, ValidationErrorUnknownFormat)
	}
	if r.Mode != "" && !pie.Contains(AvailableModes, r.Mode) {
		return fmt.Errorf("mode %q: %w", r.Mode, ValidationErrorUnknownMode)
	}
	if r.NumMatches != nil && *r.NumMatches < 0 {
		return fmt.Errorf("num matches %d: %w", *r.NumMatches, ValidationErrorNegativeMatches)
	}
	if len(r.FixedTeams) > 0 && r.Format == FormatSingles {
		return ValidationErrorFixedTeamsSingles
	}

	seen := make(map[PlayerID]struct{}, len(r.Participants))
	for _, p := range r.Participants {
		if p.PlayerID == "" {
			return ValidationErrorEmptyPlayerID
		}
		if _, ok := seen[p.PlayerID]; ok {
			return fmt.Errorf("participant %s: %w", p.PlayerID, ValidationErrorDuplicatePlayer)
		}
		seen[p.PlayerID] = struct{}{}
	}

	inTeam := make(map[PlayerID]struct{}, len(r.FixedTeams)*2)
	for _, team := range r.FixedTeams {
		if team.A == "" || team.B == "" {
			return ValidationErrorEmptyPlayerID
		}
		if team.A == team.B {
			return fmt.Errorf("fixed team %s: %w", team.A, ValidationErrorSamePlayerInPair)
		}
		for _, id := range team.Players() {
			if _, ok := inTeam[id]; ok {
				return fmt.Errorf("fixed team player %s: %w", id, ValidationErrorPlayerInTwoTeams)
			}
			inTeam[id] = struct{}{}
		}
	}

	for _, court := range r.Courts {
		if err := court.Validate(); err != nil {
			return err
		}
	}

	return nil
}

func (c Court) Validate() error {
	if c.CourtID == "" {
		return ValidationErrorEmptyCourtID
	}
	if _, err := validator.ValidateStruct(c); err != nil {
		return fmt.Errorf("court %s: %w", c.CourtID, err)
	}
	return nil
}

// FormatOrDefault returns DOUBLES when no format is set.
func (r RoundRequest) FormatOrDefault() Format {
	if r.Format == "" {
		return FormatDoubles
	}
	return r.Format
}

// ModeOrDefault returns RANDOM when no mode is set.
func (r RoundRequest) ModeOrDefault() Mode {
	if r.Mode == "" {
		return ModeRandom
	}
	return r.Mode
}

// GenderTeamsOrDefault returns ANY when no gender rule is set.
func (r RoundRequest) GenderTeamsOrDefault() GenderTeams {
	if r.GenderTeams == "" {
		return GenderTeamsAny
	}
	return r.GenderTeams
}
