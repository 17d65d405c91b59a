/*
Package boundedbuffer provides a thread-safe, fixed-capacity, append-only
buffer that retains only the most recently added items. Any number of
goroutines may Add concurrently; readers take a point-in-time snapshot and
traverse it without blocking writers and without any locking of their own.

The package is built with Go Generics, providing compile-time type safety.
You create a buffer for your specific type, and all operations like Add()
and Items() work directly with that type, eliminating the need for type
assertions.

Key Features:

  - Bounded Retention: The buffer holds at most the capacity given at
    construction. Once full, each Add silently drops the oldest item.

  - Consistent Snapshots: Iterator(), All() and Items() capture the buffer
    state atomically in an O(1) critical section. The traversal that follows
    holds no lock, so a slow reader never blocks writers, and writers never
    disturb a traversal already underway.

  - Newest First: Snapshots yield items in reverse insertion order, so the
    most recent item always comes first.

  - Short-Lived Iterators: An Iterator is a single-pass view of one
    snapshot. Take a fresh one per traversal and do not retain it, so that
    items superseded in the meantime can be reclaimed.

Example: Basic Usage

	// Create a buffer that retains the last 3 values.
	b, err := boundedbuffer.New[string](3)
	if err != nil {
		log.Fatal(err)
	}

	b.Add("a")
	b.Add("b")
	b.Add("c")
	b.Add("d") // "a" is dropped

	fmt.Println(b.Items()) // [d c b]

Example: Iterating a Snapshot

	it := b.Iterator()
	for it.HasNext() {
		item, _ := it.Next()
		fmt.Println(item)
	}

Example: Ranging While Writers Run

	// All takes its own snapshot, so the loop below is unaffected by
	// concurrent Add calls.
	go func() {
		for i := 0; ; i++ {
			b.Add(fmt.Sprintf("item-%d", i))
		}
	}()

	for item := range b.All() {
		fmt.Println(item)
	}
*/
package boundedbuffer
