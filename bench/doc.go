// Package bench runs prefix strategies against randomized test batches and
// averages their timings.
//
// A run is a sequence of trials. Each trial generates a fresh Batch, then
// times every strategy of the registry over all of its cases, in batch
// order. Aggregate turns the per-trial timings into one mean per strategy:
//
//	cfg := bench.DefaultConfig()
//	b, err := bench.New(cfg, prefix.Default(), bench.WithProgress(progress))
//	if err != nil {
//	    return err
//	}
//	rep, err := b.Run()
//
// Everything runs on the calling goroutine.
package bench
