// Package formcheck validates a signup form the way a browser page would:
// each input event re-checks its field, submit checks every field, and the
// results land in per-field error slots and valid/invalid classes.
//
// Quick start:
//
//	form, err := formcheck.NewSignup(orchestrator.WithNotifier(notify.NewWriter(os.Stdout)))
//	if err != nil {
//		return err
//	}
//	_ = form.Fill(map[string]string{"username": "ada_l"})
//	result, err := form.Submit(ctx)
package formcheck
