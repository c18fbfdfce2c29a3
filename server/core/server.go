package core

import (
	"sync"
	"time"

	"github.com/automoto/pixelrunner/assets"
	cfg "github.com/automoto/pixelrunner/config"
	"github.com/automoto/pixelrunner/records"
	"github.com/automoto/pixelrunner/session"
	"github.com/automoto/pixelrunner/shared/messages"
	"github.com/automoto/pixelrunner/shared/netcomponents"
	"github.com/charmbracelet/log"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// Server hosts one independent simulation per connected client and publishes
// their frames through necs.
type Server struct {
	world     donburi.World // net world, only touched by the game loop
	loop      *GameLoop
	transport *transports.WsServerTransport

	levels       map[string]*assets.Level
	defaultLevel string
	records      *records.Store

	// Sessions by client, read by router goroutines for input
	sessions map[*router.NetworkClient]*clientSession
	mu       sync.RWMutex

	commands chan command
}

type clientSession struct {
	clientID  string
	sess      *session.Session
	entity    donburi.Entity
	renderer  *netRenderer
	completed bool
}

type commandKind int

const (
	cmdJoin commandKind = iota
	cmdLeave
)

// command defers world mutations from router goroutines to the game loop.
type command struct {
	kind   commandKind
	client *router.NetworkClient
	level  string
}

// Options configures a Server.
type Options struct {
	Levels       []*assets.Level
	DefaultLevel string
	Records      *records.Store
	TickInterval time.Duration
}

// NewServer creates a new game server
func NewServer(opts Options) *Server {
	world := donburi.NewWorld()

	s := &Server{
		world:        world,
		levels:       make(map[string]*assets.Level, len(opts.Levels)),
		defaultLevel: opts.DefaultLevel,
		records:      opts.Records,
		sessions:     make(map[*router.NetworkClient]*clientSession),
		commands:     make(chan command, 256),
	}
	for _, lvl := range opts.Levels {
		s.levels[lvl.Name] = lvl
	}
	if s.defaultLevel == "" && len(opts.Levels) > 0 {
		s.defaultLevel = opts.Levels[0].Name
	}
	if s.records == nil {
		s.records = records.NewStore(records.NewMemoryBackend())
	}
	s.loop = NewGameLoop(s, opts.TickInterval)

	// Set up the world for esync
	srvsync.UseEsync(world)

	s.setupRouterCallbacks()

	return s
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Info("client connected", "client", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		if err != nil {
			log.Info("client disconnected", "client", client.Id(), "err", err)
		} else {
			log.Info("client disconnected", "client", client.Id())
		}
		s.enqueue(command{kind: cmdLeave, client: client})
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.enqueue(command{kind: cmdJoin, client: client, level: req.Level})
	})

	// Input and session control only write atomics, so they are applied
	// directly instead of waiting for the loop.
	router.On(func(client *router.NetworkClient, ev messages.InputEvent) {
		if cs := s.session(client); cs != nil {
			if err := cs.sess.HandleEvent(ev); err != nil {
				log.Warn("bad input event", "client", client.Id(), "err", err)
			}
		}
	})

	router.On(func(client *router.NetworkClient, ctrl messages.SessionControl) {
		if cs := s.session(client); cs != nil {
			if err := cs.sess.HandleControl(ctrl); err != nil {
				log.Warn("bad session command", "client", client.Id(), "err", err)
			}
		}
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Error("client error", "client", client.Id(), "err", err)
	})
}

func (s *Server) enqueue(cmd command) {
	select {
	case s.commands <- cmd:
	default:
		log.Warn("command queue full, dropping", "client", cmd.client.Id())
	}
}

func (s *Server) session(client *router.NetworkClient) *clientSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[client]
}

// ProcessCommands applies queued joins and leaves. Called by the game loop.
func (s *Server) ProcessCommands() {
	for {
		select {
		case cmd := <-s.commands:
			switch cmd.kind {
			case cmdJoin:
				s.join(cmd.client, cmd.level)
			case cmdLeave:
				s.leave(cmd.client)
			}
		default:
			return
		}
	}
}

func (s *Server) join(client *router.NetworkClient, levelName string) {
	if s.session(client) != nil {
		return
	}
	if levelName == "" {
		levelName = s.defaultLevel
	}
	level, ok := s.levels[levelName]
	if !ok {
		log.Warn("join rejected: unknown level", "client", client.Id(), "level", levelName)
		return
	}

	sess, err := session.New(level)
	if err != nil {
		log.Error("join rejected: session not initialized", "client", client.Id(), "err", err)
		return
	}

	entity := s.world.Create(
		netcomponents.NetFrame,
		netcomponents.NetCamera,
		netcomponents.NetSession,
	)
	entry := s.world.Entry(entity)
	best := 0
	if r, ok, err := s.records.Best(level.Name); err == nil && ok {
		best = r.Ticks
	}
	netcomponents.NetSession.SetValue(entry, netcomponents.NetSessionData{
		ClientID:  client.Id(),
		Level:     level.Name,
		BestTicks: best,
	})

	err = srvsync.NetworkSync(s.world, &entity,
		srvsync.WithInterp(netcomponents.NetCamera),
		netcomponents.NetFrame,
		netcomponents.NetSession,
	)
	if err != nil {
		log.Error("failed to set up network sync", "client", client.Id(), "err", err)
		s.world.Remove(entity)
		return
	}

	cs := &clientSession{
		clientID: client.Id(),
		sess:     sess,
		entity:   entity,
		renderer: &netRenderer{world: s.world, entity: entity},
	}
	s.mu.Lock()
	s.sessions[client] = cs
	s.mu.Unlock()

	log.Info("session started", "client", client.Id(), "level", level.Name)
}

func (s *Server) leave(client *router.NetworkClient) {
	s.mu.Lock()
	cs, exists := s.sessions[client]
	if exists {
		delete(s.sessions, client)
	}
	s.mu.Unlock()

	if exists && s.world.Valid(cs.entity) {
		s.world.Remove(cs.entity)
		log.Info("session ended", "client", cs.clientID)
	}
}

// TickSessions advances every session once and publishes its frame. A
// session whose tick fails is torn down.
func (s *Server) TickSessions(now time.Time) {
	s.mu.RLock()
	clients := make([]*router.NetworkClient, 0, len(s.sessions))
	for client := range s.sessions {
		clients = append(clients, client)
	}
	s.mu.RUnlock()

	for _, client := range clients {
		cs := s.session(client)
		if cs == nil {
			continue
		}
		if err := cs.sess.TickAndRender(now, cs.renderer); err != nil {
			log.Error("session terminated", "client", cs.clientID, "err", err)
			s.leave(client)
			continue
		}
		s.recordCompletion(cs)
	}
}

func (s *Server) recordCompletion(cs *clientSession) {
	f := cs.renderer.last
	if f == nil {
		return
	}
	if f.MapState != cfg.MapCompleted {
		cs.completed = false
		return
	}
	if cs.completed {
		return
	}
	cs.completed = true

	isNew, err := s.records.Submit(f.Level, int(f.Tick), time.Now())
	if err != nil {
		log.Warn("could not save record", "level", f.Level, "err", err)
		return
	}
	log.Info("level completed", "client", cs.clientID, "level", f.Level, "ticks", f.Tick, "record", isNew)
	if isNew && s.world.Valid(cs.entity) {
		netcomponents.NetSession.Get(s.world.Entry(cs.entity)).BestTicks = int(f.Tick)
	}
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// SessionCount returns the number of running sessions
func (s *Server) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
