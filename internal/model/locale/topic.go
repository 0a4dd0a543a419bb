package locale

// Topic is the closed set of labels a user message is classified into.
type Topic string

const (
	Pregnancy   Topic = "pregnancy"
	Newborn     Topic = "newborn"
	Child       Topic = "child"
	Adolescent  Topic = "adolescent"
	Scheme      Topic = "scheme"
	Hospital    Topic = "hospital"
	Diet        Topic = "diet"
	Vaccination Topic = "vaccination"
	Default     Topic = "default"
)

// Topics lists the classifiable topics in matching priority order.
// Default is not included since it is never matched by a trigger.
var Topics = []Topic{Pregnancy, Newborn, Child, Adolescent, Scheme, Hospital, Diet, Vaccination}

// AllTopics is Topics followed by Default.
func AllTopics() []Topic {
	return append(append([]Topic(nil), Topics...), Default)
}

// Key returns the resource table key holding the canned response for t.
func (t Topic) Key() Key {
	return Key("topic." + string(t))
}
