package storex

// ChanListener returns a Listener that forwards each commit notification to
// ch. The send is non-blocking: when ch is full the notification is dropped,
// so a slow consumer can never stall a dispatch.
//
// Useful for select-loop consumers that coalesce bursts of commits and read
// Store.State once per wakeup.
func ChanListener(ch chan<- struct{}) Listener {
	return func() {
		select {
		case ch <- struct{}{}:
		default:
			// Channel full - drop, consumer will re-read state anyway
		}
	}
}
