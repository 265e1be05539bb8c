package keeper

import (
	"context"

	"github.com/paw-chain/pawswap/x/amm/types"
)

// acquireFlashLoanLock marks ctx's store as running a flash loan callback.
func (k Keeper) acquireFlashLoanLock(ctx context.Context) error {
	if err := k.requireNoFlashLoan(ctx); err != nil {
		return err
	}
	k.getStore(ctx).Set(types.FlashLoanLockKey, []byte{0x01})
	return nil
}

func (k Keeper) releaseFlashLoanLock(ctx context.Context) {
	k.getStore(ctx).Delete(types.FlashLoanLockKey)
}

// requireNoFlashLoan rejects pool mutations from inside a flash loan
// callback, where borrowed reserves would otherwise count as deposits.
func (k Keeper) requireNoFlashLoan(ctx context.Context) error {
	if k.getStore(ctx).Has(types.FlashLoanLockKey) {
		return types.ErrReentrancy.Wrap("flash loan in progress")
	}
	return nil
}
