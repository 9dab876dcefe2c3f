// replaydump parses a .wotreplay capture and prints what it found, without
// needing the server or a database.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"wot-tracker/internal/replay"

	"github.com/spf13/cobra"
)

var (
	flagPlayers bool
	flagEconomy bool
	flagXP      bool
	flagJSON    bool
)

var rootCmd = &cobra.Command{
	Use:   "replaydump <file.wotreplay>",
	Short: "Decode a World of Tanks replay file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	rootCmd.Flags().BoolVar(&flagPlayers, "players", false, "Include the full participant roster")
	rootCmd.Flags().BoolVar(&flagEconomy, "economy", false, "Include the credit breakdown")
	rootCmd.Flags().BoolVar(&flagXP, "xp", false, "Include the XP breakdown")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the whole battle as JSON")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDump(cmd *cobra.Command, args []string) error {
	battle, err := replay.ParseFile(args[0])
	if err != nil {
		switch {
		case errors.Is(err, replay.ErrNoBattleData):
			return fmt.Errorf("this file has no usable battle data, did you quit before the match ended?")
		case errors.Is(err, replay.ErrAmbiguousAccount):
			return fmt.Errorf("couldn't tell which account this replay belongs to")
		}
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(battle)
	}

	m := battle.Metadata
	p := battle.Performance

	fmt.Printf("%s in %s on %s (%s)\n", m.PlayerName, m.VehicleTag, m.MapDisplayName, m.ServerName)
	fmt.Printf("recorded %s, %s, %s\n", m.RecordedAt.Format("02 Jan 2006 15:04"), m.BattleType(), m.GameMode())
	result := "defeat"
	if m.Arena.WinnerTeam == 0 {
		result = "draw"
	} else if p.Team == m.Arena.WinnerTeam {
		result = "victory"
	}
	fmt.Printf("result: %s (team %d, winner %d), duration %ds\n", result, p.Team, m.Arena.WinnerTeam, m.Arena.Duration)
	fmt.Printf("kills %d, damage %d, assisted %d, spotted %d, blocked %d\n",
		p.Kills, p.DamageDealt,
		p.DamageAssistedRadio+p.DamageAssistedTrack+p.DamageAssistedStun,
		p.Spotted, p.DamageBlockedByArmor)
	fmt.Printf("xp %d (free %d), credits %d\n", battle.XP.XP, battle.XP.FreeXP, battle.Economy.Credits)

	if flagPlayers {
		fmt.Println("\nplayers:")
		for _, pl := range battle.Players {
			kills := "n/a"
			if pl.Frags.Known {
				kills = fmt.Sprint(pl.Frags.Count)
			}
			status := "alive"
			if !pl.IsAlive.Bool() {
				status = "dead"
			}
			clan := ""
			if pl.ClanTag != "" {
				clan = " [" + pl.ClanTag + "]"
			}
			fmt.Printf("  team %d  %-24s%s  %s (%s)  kills %s  %s\n",
				pl.Team, pl.Name, clan, pl.VehicleTag, pl.VehicleNation, kills, status)
		}
	}
	if flagEconomy {
		fmt.Println("\neconomy:")
		e := battle.Economy
		fmt.Printf("  credits %d (subtotal %d, original %d)\n", e.Credits, e.SubtotalCredits, e.OriginalCredits)
		fmt.Printf("  repair %d, ammo %d, consumables %d\n", e.AutoRepairCost, e.ResupplyAmmunition(), e.ResupplyConsumables())
		fmt.Printf("  booster %d, achievement %d, penalty %d\n", e.BoosterCredits, e.AchievementCredits, e.CreditsPenalty)
	}
	if flagXP {
		fmt.Println("\nxp:")
		x := battle.XP
		fmt.Printf("  xp %d (subtotal %d, original %d, penalty %d)\n", x.XP, x.SubtotalXP, x.OriginalXP, x.XPPenalty)
		fmt.Printf("  free %d, crew %d, squad %d, booster %d\n", x.FreeXP, x.TmenXP, x.SquadXP, x.BoosterXP)
	}
	return nil
}
