// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"fmt"
	"slices"
	"strings"
)

// PlayerID is the caller supplied identifier of a player.
type PlayerID string

// PairKey is the canonical key of two players, smaller id first.
type PairKey string

// MatchupKey is the canonical key of two teams facing each other.
type MatchupKey string

var keyEscaper = strings.NewReplacer(`\`, `\\`, "-", `\-`)

// GetPairKey returns the canonical key for two players. A "-" or "\" inside an id is
// escaped with "\", so the unescaped "-" always separates the two ids.
func GetPairKey(player1, player2 PlayerID) PairKey {
	if player2 < player1 {
		player1, player2 = player2, player1
	}
	return PairKey(keyEscaper.Replace(string(player1)) + "-" + keyEscaper.Replace(string(player2)))
}

// GetMatchupKey returns the canonical key for two team keys.
func GetMatchupKey(teamA, teamB PairKey) MatchupKey {
	if teamA < teamB {
		return MatchupKey(fmt.Sprintf("%s-vs-%s", teamA, teamB))
	}
	return MatchupKey(fmt.Sprintf("%s-vs-%s", teamB, teamA))
}

// Pair is an unordered set of two players who would be teammates.
// The order of A and B is kept only for presentation.
type Pair struct {
	A PlayerID `json:"a" yaml:"a"`
	B PlayerID `json:"b" yaml:"b"`
}

func NewPair(a, b PlayerID) Pair {
	return Pair{A: a, B: b}
}

func (p Pair) Key() PairKey {
	return GetPairKey(p.A, p.B)
}

func (p Pair) Players() []PlayerID {
	return []PlayerID{p.A, p.B}
}

func (p Pair) Contains(id PlayerID) bool {
	return p.A == id || p.B == id
}

// Partner returns the other member of the pair, or empty when id is not a member.
func (p Pair) Partner(id PlayerID) PlayerID {
	switch id {
	case p.A:
		return p.B
	case p.B:
		return p.A
	}
	return ""
}

// Valid reports whether the pair holds two distinct, non-empty ids.
func (p Pair) Valid() bool {
	return p.A != "" && p.B != "" && p.A != p.B
}

func (p Pair) String() string {
	return string(p.A) + string(p.B)
}

// TeamKey returns the pair key formed by the first two members of a team.
func TeamKey(team []PlayerID) (PairKey, bool) {
	if len(team) < 2 {
		return "", false
	}
	return GetPairKey(team[0], team[1]), true
}

// Set is the score of one set of a match.
type Set struct {
	TeamA int `json:"teamA" yaml:"teamA"`
	TeamB int `json:"teamB" yaml:"teamB"`
}

// Match is one team against another on a court.
type Match struct {
	MatchID string     `json:"id,omitempty"      yaml:"id,omitempty"`
	TeamA   []PlayerID `json:"teamA"             yaml:"teamA"`
	TeamB   []PlayerID `json:"teamB"             yaml:"teamB"`
	CourtID string     `json:"courtId,omitempty" yaml:"courtId,omitempty"`
	Sets    []Set      `json:"sets,omitempty"    yaml:"sets,omitempty"`
}

// HasPlayers is false for placeholder matches with no players assigned yet.
func (m Match) HasPlayers() bool {
	return len(m.TeamA) > 0 && len(m.TeamB) > 0
}

func (m Match) Players() []PlayerID {
	players := make([]PlayerID, 0, len(m.TeamA)+len(m.TeamB))
	players = append(players, m.TeamA...)
	return append(players, m.TeamB...)
}

// Score sums the set scores of both teams, ignoring sets nobody scored in.
func (m Match) Score() (teamA, teamB int) {
	for _, set := range m.Sets {
		if set.TeamA <= 0 && set.TeamB <= 0 {
			continue
		}
		teamA += set.TeamA
		teamB += set.TeamB
	}
	return teamA, teamB
}

// Winners returns the winning and losing team. A tie goes to team A.
func (m Match) Winners() (winners, losers []PlayerID) {
	scoreA, scoreB := m.Score()
	if scoreB > scoreA {
		return slices.Clone(m.TeamB), slices.Clone(m.TeamA)
	}
	return slices.Clone(m.TeamA), slices.Clone(m.TeamB)
}

// Round is the set of matches played simultaneously.
type Round struct {
	Matches []Match `json:"matches" yaml:"matches"`
}

// Players returns every player of the round in match order.
func (r Round) Players() []PlayerID {
	players := make([]PlayerID, 0, len(r.Matches)*4)
	for _, match := range r.Matches {
		players = append(players, match.Players()...)
	}
	return players
}

type Gender string

const (
	GenderMale           Gender = "MALE"
	GenderFemale         Gender = "FEMALE"
	GenderPreferNotToSay Gender = "PREFER_NOT_TO_SAY"
)

// GenderTeams restricts who may be scheduled and how pairs are composed.
type GenderTeams string

const (
	GenderTeamsAny      GenderTeams = "ANY" // default
	GenderTeamsMen      GenderTeams = "MEN"
	GenderTeamsWomen    GenderTeams = "WOMEN"
	GenderTeamsMixPairs GenderTeams = "MIX_PAIRS"
	GenderTeamsMixed    GenderTeams = "MIXED"
)

var AvailableGenderTeams = []GenderTeams{GenderTeamsAny, GenderTeamsMen, GenderTeamsWomen, GenderTeamsMixPairs, GenderTeamsMixed}

type Format string

const (
	FormatDoubles Format = "DOUBLES" // default
	FormatSingles Format = "SINGLES"
)

var AvailableFormats = []Format{FormatDoubles, FormatSingles}

func (f Format) TeamSize() int {
	if f == FormatSingles {
		return 1
	}
	return 2
}

type Mode string

const (
	ModeRandom       Mode = "RANDOM" // default
	ModeWinnersCourt Mode = "WINNERS_COURT"
)

var AvailableModes = []Mode{ModeRandom, ModeWinnersCourt}

// Participant is a player registered for the session.
type Participant struct {
	PlayerID PlayerID `json:"playerId" yaml:"id"`
	Gender   Gender   `json:"gender"   yaml:"gender"`
	Playing  bool     `json:"playing"  yaml:"playing"`
	Level    float64  `json:"level"    yaml:"level"`
}

type Court struct {
	CourtID string `json:"courtId" yaml:"id"    valid:"stringlength(1|128)"`
	Order   int    `json:"order"   yaml:"order" valid:"range(0|2147483647)"`
}

// RoundRequest is everything needed to schedule the next round of a session.
type RoundRequest struct {
	Mode           Mode          `json:"mode,omitempty"`
	Format         Format        `json:"format,omitempty"`
	GenderTeams    GenderTeams   `json:"genderTeams,omitempty"`
	Participants   []Participant `json:"participants"`
	FixedTeams     []Pair        `json:"fixedTeams,omitempty"`
	Courts         []Court       `json:"courts,omitempty"`
	NumMatches     *int          `json:"numMatches,omitempty"` // derived from courts and players when nil
	PreviousRounds []Round       `json:"previousRounds"`
}

// Result is a generated round. Resting holds teams that were selected but got no opponent.
type Result struct {
	Matches []Match      `json:"matches"`
	Resting [][]PlayerID `json:"resting,omitempty"`
	Reason  string       `json:"reason,omitempty"`
}

// Round wraps the matches so the caller can append them to the history.
func (r Result) Round() Round {
	return Round{Matches: r.Matches}
}
