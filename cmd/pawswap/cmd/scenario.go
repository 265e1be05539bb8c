package cmd

import (
	"fmt"
	"os"

	"cosmossdk.io/math"
	"github.com/cometbft/cometbft/crypto"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"

	"github.com/paw-chain/pawswap/x/amm/types"
)

// Step kinds understood by the simulator.
const (
	StepAddLiquidity    = "add_liquidity"
	StepRemoveLiquidity = "remove_liquidity"
	StepSwapExactIn     = "swap_exact_in"
	StepSwapExactOut    = "swap_exact_out"
	StepSetFee          = "set_fee"
	StepOracle          = "oracle"
	StepCommit          = "commit"
)

// Scenario is a replayable list of steps against a fresh sandbox chain.
// Amounts may be written as YAML integers or as decimal strings.
type Scenario struct {
	// Authority names the account allowed to set the fee.
	Authority string  `yaml:"authority"`
	FeeBps    *uint32 `yaml:"fee_bps"`
	// Accounts maps account names to their initial balances.
	Accounts map[string]map[string]interface{} `yaml:"accounts"`
	Steps    []Step                            `yaml:"steps"`
}

// Step is one operation of a Scenario. Which fields apply depends on Op.
type Step struct {
	Op      string `yaml:"op"`
	Account string `yaml:"account"`
	// Swaps sell AssetA for AssetB.
	AssetA  string      `yaml:"asset_a"`
	AssetB  string      `yaml:"asset_b"`
	AmountA interface{} `yaml:"amount_a"`
	AmountB interface{} `yaml:"amount_b"`
	// Amount is the exact side of a swap or the LP amount to burn.
	Amount interface{} `yaml:"amount"`
	// Limit is min out for exact-in swaps and max in for exact-out swaps.
	Limit  interface{} `yaml:"limit"`
	FeeBps interface{} `yaml:"fee_bps"`
	// ExpectError marks steps that must fail.
	ExpectError bool `yaml:"expect_error"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(bz)
}

// ParseScenario decodes a YAML scenario.
func ParseScenario(bz []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.UnmarshalStrict(bz, &s); err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("scenario has no steps")
	}
	for i, step := range s.Steps {
		switch step.Op {
		case StepAddLiquidity, StepRemoveLiquidity, StepSwapExactIn, StepSwapExactOut, StepSetFee, StepOracle, StepCommit:
		default:
			return nil, fmt.Errorf("step %d: unknown op %q", i, step.Op)
		}
	}
	return &s, nil
}

// AccountAddress maps a scenario account name to a deterministic address.
func AccountAddress(name string) sdk.AccAddress {
	return sdk.AccAddress(crypto.AddressHash([]byte(name)))
}

// toAmount converts a loosely typed YAML value into an amount. A missing
// value is zero.
func toAmount(field string, raw interface{}) (math.Int, error) {
	if raw == nil {
		return math.ZeroInt(), nil
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		return math.Int{}, fmt.Errorf("%s: %w", field, err)
	}
	return parseAmount(field, s)
}

func toFeeBps(raw interface{}) (uint32, error) {
	bps, err := cast.ToUint32E(raw)
	if err != nil {
		return 0, fmt.Errorf("fee_bps: %w", err)
	}
	return bps, types.ValidateFee(bps)
}
