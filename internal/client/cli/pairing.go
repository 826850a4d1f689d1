package cli

import (
	"context"
	"log"
)

// CreateInvite asks the server for a pairing code to hand to the partner.
// Creating a new code invalidates any previous one.
func (a *App) CreateInvite(ctx context.Context) error {
	code, err := a.client.CreatePairInvite(ctx)
	if err != nil {
		log.Printf("Invite failed: %s", err.Error())
		return err
	}
	printlnFn("Pairing code:", code)
	printlnFn("Share it with your partner; it expires shortly.")
	return nil
}

// AcceptInvite pairs this account with the one that issued the code.
func (a *App) AcceptInvite(ctx context.Context, code string) error {
	if err := a.client.AcceptPairInvite(ctx, code); err != nil {
		log.Printf("Pairing failed: %s", err.Error())
		return err
	}
	printlnFn("Paired! Use 'partner' to read your partner's entries.")
	return nil
}

// Unpair removes the partner link for both accounts.
func (a *App) Unpair(ctx context.Context) error {
	if err := a.client.RemovePartner(ctx); err != nil {
		log.Printf("Unpair failed: %s", err.Error())
		return err
	}
	printlnFn("Partner link removed.")
	return nil
}
