// Package dashboard assembles the LUNA home screen for an account.
//
// Loader.Load fans the provider calls out in parallel, waits for each one in
// its own slot, and combines them with the effective subscription, the phase
// copy, the bio-weather insight and the demo calendar:
//
//	loader := dashboard.NewLoader(client,
//		dashboard.WithCoordinates(external.DefaultLatitude, external.DefaultLongitude),
//		dashboard.WithLogger(log),
//	)
//	d := loader.Load(ctx, account)
//	if d.Degraded() {
//		// at least one card shows fallback data
//	}
//
// Load never fails. An account without a known phase is treated as luteal.
package dashboard
