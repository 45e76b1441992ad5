package reloadbench

// This file contains the panic-on-error variants of the API.

// MustRun is like Run but panics on failure. A benchmark run is a
// manual diagnostic with no salvage path, so aborting is usually the
// right call.
func (b *Bench) MustRun() *Result {
	res, err := b.Run()
	if err != nil {
		panic(err)
	}
	return res
}
