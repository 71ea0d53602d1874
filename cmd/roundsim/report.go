// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/elliotchance/pie/v2"
	"github.com/fatih/color"

	"github.com/AccelByte/extend-round-scheduler/pkg/history"
	"github.com/AccelByte/extend-round-scheduler/pkg/mathutil"
	"github.com/AccelByte/extend-round-scheduler/pkg/models"
)

// Printer writes simulated rounds. Teams that played together before are red,
// team matchups seen before are yellow and repeated individual opponents are
// listed after the match.
type Printer struct {
	out           io.Writer
	fixedTeams    bool
	repeatTeam    *color.Color
	repeatMatchup *color.Color
}

func NewPrinter(out io.Writer, fixedTeams bool, noColor bool) *Printer {
	p := &Printer{
		out:           out,
		fixedTeams:    fixedTeams,
		repeatTeam:    color.New(color.FgRed),
		repeatMatchup: color.New(color.FgYellow),
	}
	if noColor {
		p.repeatTeam.DisableColor()
		p.repeatMatchup.DisableColor()
	}
	return p
}

func (p *Printer) Round(number int, result models.Result, previousRounds []models.Round) {
	if len(result.Matches) == 0 {
		fmt.Fprintf(p.out, "Round %d: no matches possible (%s)\n\n", number, result.Reason)
		return
	}

	fmt.Fprintf(p.out, "Round %d\n", number)
	teammates := history.TeammateHistory(previousRounds)
	matchups := history.TeamMatchupHistory(previousRounds)
	opponents := history.OpponentHistory(previousRounds)
	for i, match := range result.Matches {
		fmt.Fprintf(p.out, "%s\n", p.formatMatch(i+1, match, teammates, matchups, opponents))
	}
	for _, team := range result.Resting {
		fmt.Fprintf(p.out, "   resting: %s\n", formatTeam(team))
	}
	if result.Reason != "" {
		fmt.Fprintf(p.out, "   reason: %s\n", result.Reason)
	}
	fmt.Fprintln(p.out)
}

func (p *Printer) formatMatch(number int, match models.Match, teammates map[models.PairKey]int,
	matchups map[models.MatchupKey]int, opponents map[models.PairKey]int) string {
	teamA := formatTeam(match.TeamA)
	teamB := formatTeam(match.TeamB)

	keyA, okA := models.TeamKey(match.TeamA)
	keyB, okB := models.TeamKey(match.TeamB)
	if !p.fixedTeams {
		if okA && teammates[keyA] > 0 {
			teamA = p.repeatTeam.Sprint(teamA)
		}
		if okB && teammates[keyB] > 0 {
			teamB = p.repeatTeam.Sprint(teamB)
		}
	}

	line := fmt.Sprintf("%s - %s", teamA, teamB)
	if okA && okB && matchups[models.GetMatchupKey(keyA, keyB)] > 0 {
		line = p.repeatMatchup.Sprint(line)
	}

	var repeated []string
	for _, a := range match.TeamA {
		for _, b := range match.TeamB {
			key := models.GetPairKey(a, b)
			if opponents[key] > 0 {
				repeated = append(repeated, string(key))
			}
		}
	}

	prefix := fmt.Sprintf("%d.", number)
	if match.CourtID != "" {
		prefix = fmt.Sprintf("%d. [%s]", number, match.CourtID)
	}
	if len(repeated) > 0 {
		return fmt.Sprintf("%s %s (%s)", prefix, line, strings.Join(repeated, ", "))
	}
	return fmt.Sprintf("%s %s", prefix, line)
}

func formatTeam(team []models.PlayerID) string {
	return strings.Join(pie.Map(team, func(id models.PlayerID) string {
		return string(id)
	}), "/")
}

// Summary prints how evenly matches, partners and opponents were spread over the session.
func (p *Printer) Summary(players []models.PlayerID, rounds []models.Round) {
	stats := history.Compute(players, rounds)
	played := stats.PlayedCounts()
	teammates := history.TeammateHistory(rounds)
	matchups := history.TeamMatchupHistory(rounds)
	opponents := history.OpponentHistory(rounds)

	fmt.Fprintf(p.out, "Summary after %d rounds\n", stats.Rounds())
	if len(played) > 0 {
		counts := pie.Values(played)
		fmt.Fprintf(p.out, "  matches played: min %d, max %d, spread %d\n",
			pie.Min(counts), pie.Max(counts), mathutil.Spread(played))
	}
	if !p.fixedTeams {
		fmt.Fprintf(p.out, "  partner pairs used: %d, repeated: %d, max %d\n",
			len(teammates), countAbove(teammates, 1), maxCount(teammates))
	}
	fmt.Fprintf(p.out, "  team matchups used: %d, repeated: %d\n", len(matchups), countAbove(matchups, 1))
	fmt.Fprintf(p.out, "  opponent pairs used: %d, max %d\n", len(opponents), maxCount(opponents))

	for _, id := range pie.Sort(pie.Keys(played)) {
		fmt.Fprintf(p.out, "    %s: %d\n", id, played[id])
	}
}

func countAbove[K comparable](counts map[K]int, limit int) int {
	n := 0
	for _, count := range counts {
		if count > limit {
			n++
		}
	}
	return n
}

func maxCount[K comparable](counts map[K]int) int {
	if len(counts) == 0 {
		return 0
	}
	return pie.Max(pie.Values(counts))
}
