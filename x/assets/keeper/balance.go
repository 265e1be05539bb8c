package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawswap/x/assets/types"
)

// Balance returns the account's balance of id, zero when unset.
func (k Keeper) Balance(ctx context.Context, id string, account sdk.AccAddress) math.Int {
	bz := k.getStore(ctx).Get(types.GetBalanceKey(id, account))
	if bz == nil {
		return math.ZeroInt()
	}
	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(fmt.Sprintf("corrupt balance for %s/%s: %v", id, account, err))
	}
	return amount
}

func (k Keeper) setBalance(ctx context.Context, id string, account sdk.AccAddress, amount math.Int) error {
	store := k.getStore(ctx)
	key := types.GetBalanceKey(id, account)
	if amount.IsZero() {
		store.Delete(key)
		return nil
	}
	bz, err := amount.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode balance: %w", err)
	}
	store.Set(key, bz)
	return nil
}

// IterateBalances calls cb for every non-zero balance of id until cb
// returns true.
func (k Keeper) IterateBalances(ctx context.Context, id string, cb func(account sdk.AccAddress, amount math.Int) (stop bool)) error {
	prefix := types.GetBalancesPrefix(id)
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		// key: prefix | len(addr) | addr
		rest := iterator.Key()[len(prefix):]
		if len(rest) == 0 || int(rest[0]) != len(rest)-1 {
			return fmt.Errorf("malformed balance key %x", iterator.Key())
		}
		account := sdk.AccAddress(rest[1:])

		var amount math.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			return fmt.Errorf("failed to decode balance of %s: %w", account, err)
		}
		if cb(account, amount) {
			break
		}
	}
	return nil
}

// MintInto creates amount of id in account.
func (k Keeper) MintInto(ctx context.Context, id string, account sdk.AccAddress, amount math.Int) error {
	if err := validatePositive(amount); err != nil {
		return err
	}
	asset, err := k.GetAsset(ctx, id)
	if err != nil {
		return err
	}

	supply := asset.Supply.Add(amount)
	if supply.GT(types.MaxSupply) {
		return types.ErrOverflow.Wrapf("minting %s %s", amount, id)
	}
	balance := k.Balance(ctx, id, account).Add(amount)
	if balance.LT(asset.MinBalance) {
		return types.ErrBelowMinimum.Wrapf("%s %s below minimum %s", balance, id, asset.MinBalance)
	}

	asset.Supply = supply
	if err := k.setAsset(ctx, id, asset); err != nil {
		return err
	}
	if err := k.setBalance(ctx, id, account, balance); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMinted,
			sdk.NewAttribute(types.AttributeKeyAsset, id),
			sdk.NewAttribute(types.AttributeKeyTo, account.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// BurnFrom destroys up to amount of id held by account and returns the
// amount burned. Exact burns fail unless the whole amount can go; BestEffort
// burns what the rules allow. Polite burns must leave either nothing or at
// least the minimum balance; Force burns ignore the minimum.
func (k Keeper) BurnFrom(
	ctx context.Context,
	id string,
	account sdk.AccAddress,
	amount math.Int,
	precision types.Precision,
	fortitude types.Fortitude,
) (math.Int, error) {
	if err := validatePositive(amount); err != nil {
		return math.Int{}, err
	}
	asset, err := k.GetAsset(ctx, id)
	if err != nil {
		return math.Int{}, err
	}

	balance := k.Balance(ctx, id, account)
	burn := math.MinInt(amount, balance)
	if fortitude == types.Polite {
		remaining := balance.Sub(burn)
		if remaining.IsPositive() && remaining.LT(asset.MinBalance) {
			burn = math.MaxInt(balance.Sub(asset.MinBalance), math.ZeroInt())
		}
	}

	if precision == types.Exact && burn.LT(amount) {
		if amount.GT(balance) {
			return math.Int{}, types.ErrInsufficientBalance.Wrapf("burning %s %s from balance %s", amount, id, balance)
		}
		return math.Int{}, types.ErrBelowMinimum.Wrapf("burning %s %s would leave dust", amount, id)
	}
	if burn.IsZero() {
		return burn, nil
	}

	asset.Supply = asset.Supply.Sub(burn)
	if err := k.setAsset(ctx, id, asset); err != nil {
		return math.Int{}, err
	}
	if err := k.setBalance(ctx, id, account, balance.Sub(burn)); err != nil {
		return math.Int{}, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBurned,
			sdk.NewAttribute(types.AttributeKeyAsset, id),
			sdk.NewAttribute(types.AttributeKeyFrom, account.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, burn.String()),
		),
	)
	return burn, nil
}

// Transfer moves amount of id from one account to another. Preservation
// decides whether the source may be emptied.
func (k Keeper) Transfer(
	ctx context.Context,
	id string,
	from, to sdk.AccAddress,
	amount math.Int,
	preservation types.Preservation,
) error {
	if amount.IsNil() || amount.IsNegative() {
		return types.ErrInvalidAmount.Wrapf("transfer amount %s", amount)
	}
	asset, err := k.GetAsset(ctx, id)
	if err != nil {
		return err
	}
	if amount.IsZero() || from.Equals(to) {
		return nil
	}

	fromBalance := k.Balance(ctx, id, from)
	if fromBalance.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf("%s has %s %s, needs %s", from, fromBalance, id, amount)
	}
	remaining := fromBalance.Sub(amount)
	switch preservation {
	case types.Expendable:
		if remaining.IsPositive() && remaining.LT(asset.MinBalance) {
			return types.ErrBelowMinimum.Wrapf("%s would keep %s %s", from, remaining, id)
		}
	default:
		if !remaining.IsPositive() || remaining.LT(asset.MinBalance) {
			return types.ErrBelowMinimum.Wrapf("%s must keep at least %s %s", from, math.MaxInt(asset.MinBalance, math.OneInt()), id)
		}
	}

	toBalance := k.Balance(ctx, id, to).Add(amount)
	if toBalance.LT(asset.MinBalance) {
		return types.ErrBelowMinimum.Wrapf("%s would hold %s %s", to, toBalance, id)
	}

	if err := k.setBalance(ctx, id, from, remaining); err != nil {
		return err
	}
	if err := k.setBalance(ctx, id, to, toBalance); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTransferred,
			sdk.NewAttribute(types.AttributeKeyAsset, id),
			sdk.NewAttribute(types.AttributeKeyFrom, from.String()),
			sdk.NewAttribute(types.AttributeKeyTo, to.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

func validatePositive(amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("amount %s must be positive", amount)
	}
	return nil
}
