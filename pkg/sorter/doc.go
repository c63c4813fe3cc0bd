// Package sorter provides an embeddable object sorter for a recycling line.
//
// A Sorter turns raw color labels into belt assignments using the fixed
// routing table (black -> A, transparent -> B, colorful -> C). It can route a
// single label, a batch of labels concurrently, or follow a feed of labels
// and write each assignment to a sink.
//
// # Basic Usage
//
//	s := sorter.New(sorter.WithLogger(logger))
//
//	a := s.Route("transparent")
//	if a.Err != nil {
//	    // errors.Is(a.Err, sorter.ErrUnrecognizedCategory)
//	}
//	fmt.Println(a.Belt) // B
//
// # Batches
//
// RouteBatch keeps the input order and records rejected labels in place
// instead of stopping. Use [WithWorkers] to bound the fan-out.
//
// # Feeds
//
// Follow reads from any [Feed] until it closes or the context ends. The CLI
// uses a file feed backed by fsnotify.
package sorter
