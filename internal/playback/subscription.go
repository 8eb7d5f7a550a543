package playback

const eventBufferSize = 16

// Subscription provides event channels for an asynchronous observer.
// Sends never block the controller: a full buffer drops the event, and a
// reader should treat the latest snapshot as authoritative.
type Subscription struct {
	Snapshots    <-chan Snapshot
	TrackChanged <-chan TrackChange
	Done         <-chan struct{}

	snapshotCh chan Snapshot
	trackCh    chan TrackChange
	doneCh     chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		snapshotCh: make(chan Snapshot, eventBufferSize),
		trackCh:    make(chan TrackChange, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.Snapshots = s.snapshotCh
	s.TrackChanged = s.trackCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// sendSnapshot sends a snapshot (non-blocking).
func (s *Subscription) sendSnapshot(snap Snapshot) {
	select {
	case s.snapshotCh <- snap:
	default:
		// Drop if buffer full
	}
}

// sendTrack sends a track change event (non-blocking).
func (s *Subscription) sendTrack(e TrackChange) {
	select {
	case s.trackCh <- e:
	default:
	}
}
