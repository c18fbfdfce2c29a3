package messages

// JoinRequest is sent by a client after connecting to start a session. The
// client then finds its frames on the synced entity whose NetSession carries
// its client id.
type JoinRequest struct {
	Version string
	Level   string // empty selects the server's default level
}
