// Copyright © 2021 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/getamis/alice-ot/crypto/ot"
	"github.com/getamis/alice-ot/logger"
)

var cmd = &cobra.Command{
	Use:   "otctl",
	Short: `Run a single 1-out-of-2 OT/OTE transfer and print the recovered messages`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return viper.BindPFlags(cmd.Flags())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		groupPath := viper.GetString("group-file")
		groupBits := viper.GetInt("group-bits")
		k := viper.GetInt("k")
		m := viper.GetInt("m")
		variantName := viper.GetString("variant")

		variant, err := parseVariant(variantName)
		if err != nil {
			return err
		}

		grp, err := ot.MakeGroup(groupPath, groupBits)
		if err != nil {
			logger.Logger().Error("Failed to set up group", "err", err)
			return err
		}

		msgs := make([]ot.MessagePair, m)
		choice := make([]bool, m)
		for j := 0; j < m; j++ {
			m0, err := ot.RandomBitVector(ot.HashOutputBits)
			if err != nil {
				return err
			}
			m1, err := ot.RandomBitVector(ot.HashOutputBits)
			if err != nil {
				return err
			}
			b, err := ot.RandomBitVector(1)
			if err != nil {
				return err
			}
			msgs[j] = ot.MessagePair{M0: m0, M1: m1}
			choice[j] = b[0]
		}

		out, err := ot.Ote(msgs, choice, k, grp, variant)
		if err != nil {
			logger.Logger().Error("Transfer failed", "err", err, "variant", variant)
			return err
		}

		for j, z := range out {
			fmt.Printf("message %d: choice=%v recovered=%x\n", j, choice[j], ot.Pack(z))
		}
		return nil
	},
}

func parseVariant(name string) (ot.Variant, error) {
	switch name {
	case "base-ot":
		return ot.VariantBaseOT, nil
	case "iknp":
		return ot.VariantIKNP, nil
	case "alsz":
		return ot.VariantALSZ, nil
	default:
		return 0, ot.ErrUnknownVariant
	}
}

func init() {
	cmd.Flags().String("group-file", "safe_prime.txt", "path to the cached safe-prime file")
	cmd.Flags().Int("group-bits", ot.DefaultSecurityBits, "safe-prime size in bits")
	cmd.Flags().Int("k", 128, "OT extension security parameter")
	cmd.Flags().Int("m", 16, "number of transfers to run")
	cmd.Flags().String("variant", "iknp", "protocol variant: base-ot, iknp, or alsz")
}

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
