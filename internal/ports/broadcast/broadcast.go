package broadcast

import "context"

// Publisher pushes a payload to every subscriber of a topic. Delivery is
// at-most-once and best-effort; nothing is retried and no subscriber state
// is kept here.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// CommentTopic is the channel new comments of a post are announced on.
func CommentTopic(postID string) string {
	return "comments:" + postID
}
