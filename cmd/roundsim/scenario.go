// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package main

import (
	"fmt"
	"os"

	"github.com/go-openapi/swag"
	"gopkg.in/yaml.v3"

	"github.com/AccelByte/extend-round-scheduler/pkg/models"
)

const defaultRounds = 6

// Scenario describes a simulated session.
type Scenario struct {
	Mode         models.Mode          `yaml:"mode"`
	Format       models.Format        `yaml:"format"`
	GenderTeams  models.GenderTeams   `yaml:"genderTeams"`
	Rounds       int                  `yaml:"rounds"`
	Seed         *uint64              `yaml:"seed"`
	NumMatches   *int                 `yaml:"numMatches"`
	Participants []models.Participant `yaml:"-"`
	FixedTeams   []models.Pair        `yaml:"fixedTeams"`
	Courts       []models.Court       `yaml:"courts"`
}

// participants default to playing when the file does not say otherwise.
type scenarioFile struct {
	Scenario     `yaml:",inline"`
	Participants []struct {
		ID      models.PlayerID `yaml:"id"`
		Gender  models.Gender   `yaml:"gender"`
		Playing *bool           `yaml:"playing"`
		Level   float64         `yaml:"level"`
	} `yaml:"participants"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return parseScenario(data)
}

func parseScenario(data []byte) (*Scenario, error) {
	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}

	scenario := file.Scenario
	for _, p := range file.Participants {
		playing := true
		if p.Playing != nil {
			playing = swag.BoolValue(p.Playing)
		}
		scenario.Participants = append(scenario.Participants, models.Participant{
			PlayerID: p.ID,
			Gender:   p.Gender,
			Playing:  playing,
			Level:    p.Level,
		})
	}
	if scenario.Rounds <= 0 {
		scenario.Rounds = defaultRounds
	}
	if len(scenario.Participants) == 0 {
		return nil, fmt.Errorf("parse scenario: no participants")
	}
	return &scenario, nil
}

// scenarioFromFlags builds players p1..pN and courts court-1..court-N. With fixedTeams
// consecutive players are teamed up.
func scenarioFromFlags(numPlayers, numCourts, rounds int, fixedTeams, singles bool) *Scenario {
	scenario := &Scenario{Rounds: rounds}
	if scenario.Rounds <= 0 {
		scenario.Rounds = defaultRounds
	}
	if singles {
		scenario.Format = models.FormatSingles
	}

	for i := 1; i <= numPlayers; i++ {
		scenario.Participants = append(scenario.Participants, models.Participant{
			PlayerID: models.PlayerID(fmt.Sprintf("p%d", i)),
			Playing:  true,
			Level:    float64(numPlayers - i),
		})
	}
	for i := 1; i <= numCourts; i++ {
		scenario.Courts = append(scenario.Courts, models.Court{
			CourtID: fmt.Sprintf("court-%d", i),
			Order:   i,
		})
	}
	if fixedTeams && !singles {
		for i := 0; i+1 < numPlayers; i += 2 {
			scenario.FixedTeams = append(scenario.FixedTeams, models.NewPair(
				scenario.Participants[i].PlayerID,
				scenario.Participants[i+1].PlayerID,
			))
		}
	}
	return scenario
}

// Request returns the round request for the next round after previousRounds.
func (s *Scenario) Request(previousRounds []models.Round) models.RoundRequest {
	return models.RoundRequest{
		Mode:           s.Mode,
		Format:         s.Format,
		GenderTeams:    s.GenderTeams,
		Participants:   s.Participants,
		FixedTeams:     s.FixedTeams,
		Courts:         s.Courts,
		NumMatches:     s.NumMatches,
		PreviousRounds: previousRounds,
	}
}

func (s *Scenario) PlayerIDs() []models.PlayerID {
	ids := make([]models.PlayerID, 0, len(s.Participants))
	for _, p := range s.Participants {
		if p.Playing {
			ids = append(ids, p.PlayerID)
		}
	}
	return ids
}
