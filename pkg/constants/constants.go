// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package constants

const (
	DefaultPairSelectionMaxAttempts = 20

	// MaxExactMatchupTeams caps exact matchup enumeration, 12 teams have 10395 arrangements.
	MaxExactMatchupTeams = 12

	// MaxExhaustivePairingPlayers caps the backtracking pair search that runs when the
	// reshuffled attempts cannot fill a round.
	MaxExhaustivePairingPlayers = 12

	DoublesTeamSize = 2
	SinglesTeamSize = 1

	// MinPlayersDoubles is the smallest roster that can fill one doubles match.
	MinPlayersDoubles = 4
	MinPlayersSingles = 2
	MinFixedTeams     = 2
)

const (
	ModeFreePairing  = "free_pairing"
	ModeSingles      = "singles"
	ModeFixedTeams   = "fixed_teams"
	ModeWinnersCourt = "winners_court"

	GenerateRoundFunction     = "generateRound"
	SelectTeamPairsFunction   = "selectTeamPairs"
	FormMatchupsFunction      = "formMatchups"
	FixedTeamMatchupsFunction = "fixedTeamMatchups"
	WinnersCourtFunction      = "winnersCourtRound"
	ScheduleFunction          = "schedule"

	PairSelectionStagePool       = "pool"
	PairSelectionStageUnfiltered = "unfiltered"
	PairSelectionStageExpanded   = "expanded"

	// not scheduled reason constants.
	ReasonNotEnoughPlayers   = "not_enough_players"
	ReasonNotEnoughTeams     = "not_enough_teams"
	ReasonNoMatchesRequested = "no_matches_requested"
	ReasonPartialRound       = "partial_round"
	ReasonLeftoverTeam       = "leftover_team"
	ReasonPreviousRoundEmpty = "previous_round_empty"
)
