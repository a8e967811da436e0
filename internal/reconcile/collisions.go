package reconcile

// CollisionKind classifies how requested templates collide with existing
// template directories.
type CollisionKind int

const (
	// CollisionNone means no requested template exists yet.
	CollisionNone CollisionKind = iota
	// CollisionSome means some, but not all, requested templates exist.
	CollisionSome
	// CollisionAll means every requested template exists.
	CollisionAll
)

func (k CollisionKind) String() string {
	switch k {
	case CollisionNone:
		return "none"
	case CollisionSome:
		return "some"
	case CollisionAll:
		return "all"
	}
	return "unknown"
}

// Collisions is the classification plus the colliding names. Names is empty
// for CollisionNone and non-empty otherwise.
type Collisions struct {
	Kind  CollisionKind
	Names []string
}

// Classify compares the requested names with the subset of them that already
// exist. Repeated names count once. An empty request never collides.
func Classify(requested, colliding []string) Collisions {
	req := distinct(requested)

	var hits []string
	for _, name := range req {
		if contains(colliding, name) {
			hits = append(hits, name)
		}
	}

	switch {
	case len(hits) == 0:
		return Collisions{Kind: CollisionNone}
	case len(hits) == len(req):
		return Collisions{Kind: CollisionAll, Names: hits}
	default:
		return Collisions{Kind: CollisionSome, Names: hits}
	}
}
