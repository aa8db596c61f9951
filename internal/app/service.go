package app

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"flipseven/internal/bot"
	"flipseven/internal/domain"
)

// Delays paces the reveal/resolve/advance chain and bot turns. Zero values
// run continuations synchronously, which tests rely on.
type Delays struct {
	Deal      time.Duration
	Reveal    time.Duration
	Advance   time.Duration
	FirstTurn time.Duration
	BotThink  time.Duration
}

// Service is the room state machine: the only component that mutates rooms.
// Each trigger runs to completion under the addressed room's lock, and every
// paced continuation re-resolves the room through the registry before
// touching it, so a destroyed room abandons its pending chain.
type Service struct {
	registry *Registry
	notifier Notifier
	policy   bot.Policy
	delays   Delays
	logger   *slog.Logger
}

// NewService wires the orchestrator. A nil logger falls back to slog.Default.
func NewService(registry *Registry, notifier Notifier, policy bot.Policy, delays Delays, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		registry: registry,
		notifier: notifier,
		policy:   policy,
		delays:   delays,
		logger:   logger,
	}
}

// Rooms exposes the count of live rooms for health reporting.
func (s *Service) Rooms() int {
	return s.registry.Count()
}

// CreateRoom opens a new room with the caller as host. The caller receives
// the snapshot on the return path; there is no one else to notify yet.
func (s *Service) CreateRoom(name string) (RoomSnapshot, domain.Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return RoomSnapshot{}, domain.Participant{}, ErrInvalidName
	}
	host := &domain.Participant{ID: uuid.NewString(), Name: name}
	h := s.registry.create(host)

	h.mu.Lock()
	defer h.mu.Unlock()
	s.logger.Info("room created", "room", h.room.Code, "host", name)
	return Snapshot(h.room), *host, nil
}

// JoinRoom adds a participant to a lobby-phase room.
func (s *Service) JoinRoom(code, name string) (RoomSnapshot, domain.Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return RoomSnapshot{}, domain.Participant{}, ErrInvalidName
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return RoomSnapshot{}, domain.Participant{}, ErrInvalidCode
	}
	h := s.registry.lookup(code)
	if h == nil {
		return RoomSnapshot{}, domain.Participant{}, ErrRoomNotFound
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.room.Phase != domain.PhaseLobby {
		return RoomSnapshot{}, domain.Participant{}, ErrGameInProgress
	}
	if len(h.room.Participants) >= domain.MaxPlayers {
		return RoomSnapshot{}, domain.Participant{}, ErrRoomFull
	}
	p := &domain.Participant{ID: uuid.NewString(), Name: name}
	h.room.Participants = append(h.room.Participants, p)
	s.registry.bind(p.ID, code)

	s.logger.Info("participant joined", "room", code, "name", name)
	s.notifier.Broadcast(code, Event{Kind: EventRoomUpdated, Payload: RoomUpdatedPayload{Room: Snapshot(h.room)}})
	return Snapshot(h.room), *p, nil
}

// AddBots fills the room with automated participants, host-only, lobby-only.
func (s *Service) AddBots(code, actorID string, count int) error {
	h := s.registry.lookup(code)
	if h == nil {
		return ErrRoomNotFound
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.room.HostID != actorID {
		return ErrNotHost
	}
	if h.room.Phase != domain.PhaseLobby {
		return ErrGameInProgress
	}

	taken := make(map[string]bool)
	for _, p := range h.room.Participants {
		taken[p.Name] = true
	}
	added := 0
	for i := 0; i < count && len(h.room.Participants) < domain.MaxPlayers; i++ {
		name := bot.PickName(taken)
		taken[name] = true
		b := &domain.Participant{ID: uuid.NewString(), Name: name, IsBot: true}
		h.room.Participants = append(h.room.Participants, b)
		s.registry.bind(b.ID, code)
		added++
	}
	if added > 0 {
		s.notifier.Broadcast(code, Event{Kind: EventRoomUpdated, Payload: RoomUpdatedPayload{Room: Snapshot(h.room)}})
	}
	return nil
}

// StartGame begins a fresh game: new deck, cumulative scores reset, round 1.
// Valid from the lobby, or from round end once the game has reached its
// terminal score (a brand-new game).
func (s *Service) StartGame(code, actorID string) error {
	h := s.registry.lookup(code)
	if h == nil {
		return ErrRoomNotFound
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.room.HostID != actorID {
		return ErrNotHost
	}
	if h.room.Phase != domain.PhaseLobby {
		if _, _, over := h.room.Winner(); !(h.room.Phase == domain.PhaseRoundEnd && over) {
			return ErrGameInProgress
		}
	}

	h.room.Deck = domain.NewDeck(h.rng)
	h.room.Phase = domain.PhasePlaying
	h.room.Round = 1
	h.room.ResetRound()
	h.room.Scores = make(map[string]int)
	for _, p := range h.room.Participants {
		h.room.Scores[p.ID] = 0
	}

	s.logger.Info("game started", "room", code, "participants", len(h.room.Participants))
	s.notifier.Broadcast(code, Event{Kind: EventGameStarted, Payload: GameStartedPayload{Room: Snapshot(h.room)}})
	s.after(h, s.delays.Deal, s.dealInitial)
	return nil
}

// StartNextRound re-deals after a non-terminal round end, host-only.
func (s *Service) StartNextRound(code, actorID string) error {
	h := s.registry.lookup(code)
	if h == nil {
		return ErrRoomNotFound
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.room.HostID != actorID {
		return ErrNotHost
	}
	if h.room.Phase != domain.PhaseRoundEnd {
		return ErrGameInProgress
	}
	if _, _, over := h.room.Winner(); over {
		return ErrGameOver
	}

	h.room.Round++
	h.room.Phase = domain.PhasePlaying
	h.room.ResetRound()

	s.notifier.Broadcast(code, Event{
		Kind:    EventNewRoundStarted,
		Payload: NewRoundStartedPayload{Round: h.room.Round, Room: Snapshot(h.room)},
	})
	s.after(h, s.delays.Deal, s.dealInitial)
	return nil
}

// DrawCard handles the acting participant's draw trigger.
func (s *Service) DrawCard(code, actorID string) error {
	h := s.registry.lookup(code)
	if h == nil {
		return ErrRoomNotFound
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	p, err := s.actingParticipant(h, actorID)
	if err != nil {
		return err
	}
	s.draw(h, p)
	return nil
}

// StopTurn handles the acting participant's voluntary stop ("pass").
func (s *Service) StopTurn(code, actorID string) error {
	h := s.registry.lookup(code)
	if h == nil {
		return ErrRoomNotFound
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	p, err := s.actingParticipant(h, actorID)
	if err != nil {
		return err
	}
	s.stop(h, p)
	return nil
}

// Disconnect removes a participant wherever they are. Emptied rooms (or rooms
// with only bots left) are destroyed, which also abandons any pending
// continuations; a departing host hands the role to the next participant; a
// departing acting participant hands the turn to the scheduler immediately.
func (s *Service) Disconnect(participantID string) {
	code, ok := s.registry.roomOf(participantID)
	if !ok {
		return
	}
	h := s.registry.lookup(code)
	if h == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	removed, wasActing := h.room.RemoveParticipant(participantID)
	s.registry.unbind(participantID)
	if removed == nil {
		return
	}
	s.logger.Info("participant left", "room", code, "name", removed.Name)

	if len(h.room.Participants) == 0 || h.room.HumanCount() == 0 {
		s.registry.remove(code)
		s.logger.Info("room destroyed", "room", code)
		return
	}

	s.notifier.Broadcast(code, Event{Kind: EventRoomUpdated, Payload: RoomUpdatedPayload{Room: Snapshot(h.room)}})
	// A pending continuation will advance when it fires; advancing here too
	// would move the turn twice.
	if wasActing && h.room.Phase == domain.PhasePlaying && h.pending == 0 {
		s.advance(h)
	}
}

// actingParticipant validates a draw/stop trigger: playing phase, no
// continuation chain mid-flight, actor is the acting participant, actor still
// eligible.
func (s *Service) actingParticipant(h *roomHandle, actorID string) (*domain.Participant, error) {
	if h.room.Phase != domain.PhasePlaying {
		return nil, ErrGameInProgress
	}
	if h.pending > 0 {
		return nil, ErrActionPending
	}
	if h.room.ParticipantByID(actorID) == nil {
		return nil, ErrUnknownParticipant
	}
	current := h.room.CurrentParticipant()
	if current == nil || current.ID != actorID {
		return nil, ErrNotYourTurn
	}
	if !h.room.Eligible(actorID) {
		return nil, ErrNotYourTurn
	}
	return current, nil
}

// dealInitial gives every participant one card in turn order, then hands
// control to the bot check for the first turn.
func (s *Service) dealInitial(h *roomHandle) {
	if h.room.Phase != domain.PhasePlaying {
		return
	}
	for _, p := range h.room.Participants {
		card, err := h.room.Deck.Draw()
		if err != nil {
			s.logger.Error("deck accounting violated during deal", "room", h.room.Code, "error", err)
			return
		}
		h.room.Hands[p.ID] = []domain.Card{card}
	}
	s.notifier.Broadcast(h.room.Code, Event{
		Kind:    EventHandsDealt,
		Payload: HandsDealtPayload{Hands: copyHands(h.room.Hands), DeckCount: h.room.Deck.Remaining()},
	})
	s.after(h, s.delays.FirstTurn, s.maybeBotTurn)
}

// maybeBotTurn schedules an automated decision when the turn has landed on a
// bot. Bot turns are continuations of the room's own serialized stream, never
// external triggers.
func (s *Service) maybeBotTurn(h *roomHandle) {
	p := h.room.CurrentParticipant()
	if h.room.Phase != domain.PhasePlaying || p == nil || !p.IsBot {
		return
	}
	s.after(h, s.delays.BotThink, s.botAct)
}

// botAct re-checks that the bot still owns the turn, then draws or stops.
func (s *Service) botAct(h *roomHandle) {
	p := h.room.CurrentParticipant()
	if h.room.Phase != domain.PhasePlaying || p == nil || !p.IsBot || !h.room.Eligible(p.ID) {
		return
	}
	if s.policy.ShouldStop(h.room.Hands[p.ID]) {
		s.stop(h, p)
		return
	}
	s.draw(h, p)
}

// draw pops a card, reveals it to the room, and schedules its resolution so
// clients can pace the reveal.
func (s *Service) draw(h *roomHandle, p *domain.Participant) {
	card, err := h.room.Deck.Draw()
	if err != nil {
		s.logger.Error("deck accounting violated during draw", "room", h.room.Code, "error", err)
		return
	}
	s.notifier.Broadcast(h.room.Code, Event{
		Kind:    EventCardRevealed,
		Payload: CardRevealedPayload{ParticipantID: p.ID, Card: card},
	})

	round := h.room.Round
	deck := h.room.Deck
	pid := p.ID
	s.after(h, s.delays.Reveal, func(h *roomHandle) {
		s.resolve(h, pid, card, round, deck)
	})
}

// resolve applies a revealed card. If the round moved on or the participant
// left while the reveal was pacing, the card is retired to the deck it came
// from instead of being lost.
func (s *Service) resolve(h *roomHandle, pid string, card domain.Card, round int, deck *domain.Deck) {
	if h.room.Phase != domain.PhasePlaying || h.room.Round != round || h.room.Deck != deck {
		deck.Discard(card)
		return
	}
	p := h.room.ParticipantByID(pid)
	if p == nil {
		// The actor left during the reveal. Their removal deferred the turn
		// advance to this chain, so retire the card and move on.
		deck.Discard(card)
		s.after(h, s.delays.Advance, func(h *roomHandle) {
			s.advanceIfRound(h, round)
		})
		return
	}

	outcome := domain.ResolveDraw(h.room, p, card)
	s.notifier.Broadcast(h.room.Code, Event{
		Kind: EventCardResolved,
		Payload: CardResolvedPayload{
			Hands:      copyHands(h.room.Hands),
			Eliminated: setToSlice(h.room.Eliminated),
			Stopped:    setToSlice(h.room.Stopped),
			Message:    outcome.Message,
		},
	})

	s.after(h, s.delays.Advance, func(h *roomHandle) {
		s.advanceIfRound(h, round)
	})
}

// stop marks a voluntary (or policy-driven) stop and schedules the advance.
func (s *Service) stop(h *roomHandle, p *domain.Participant) {
	h.room.Stopped[p.ID] = true
	s.notifier.Broadcast(h.room.Code, Event{
		Kind: EventTurnPassed,
		Payload: TurnPassedPayload{
			ParticipantID: p.ID,
			Name:          p.Name,
			Stopped:       setToSlice(h.room.Stopped),
		},
	})

	round := h.room.Round
	s.after(h, s.delays.Advance, func(h *roomHandle) {
		s.advanceIfRound(h, round)
	})
}

func (s *Service) advanceIfRound(h *roomHandle, round int) {
	if h.room.Phase != domain.PhasePlaying || h.room.Round != round {
		return
	}
	s.advance(h)
}

// advance runs the turn scheduler and either announces the next turn or ends
// the round when no eligible participant remains.
func (s *Service) advance(h *roomHandle) {
	idx, complete := domain.AdvanceTurn(h.room)
	if complete {
		s.endRound(h)
		return
	}
	s.notifier.Broadcast(h.room.Code, Event{
		Kind:    EventTurnAdvanced,
		Payload: TurnAdvancedPayload{TurnIndex: idx, ParticipantID: h.room.Participants[idx].ID},
	})
	s.maybeBotTurn(h)
}

// endRound commits round scores to the cumulative totals (eliminated
// participants contribute nothing), retires every hand to the discard pile,
// and reports the winner when the terminal score is reached.
func (s *Service) endRound(h *roomHandle) {
	for _, p := range h.room.Participants {
		if !h.room.Eliminated[p.ID] {
			h.room.Scores[p.ID] += domain.Score(h.room.Hands[p.ID])
		}
		if hand := h.room.Hands[p.ID]; len(hand) > 0 {
			h.room.Deck.Discard(hand...)
		}
	}
	eliminated := setToSlice(h.room.Eliminated)
	h.room.Hands = make(map[string][]domain.Card)
	h.room.Phase = domain.PhaseRoundEnd

	scores := make(map[string]int, len(h.room.Scores))
	for id, score := range h.room.Scores {
		scores[id] = score
	}

	winner, maxScore, over := h.room.Winner()
	payload := RoundEndedPayload{
		Scores:       scores,
		Eliminated:   eliminated,
		WinningScore: maxScore,
		GameOver:     over,
	}
	if over && winner != nil {
		payload.Winner = winner.Name
		s.logger.Info("game over", "room", h.room.Code, "winner", winner.Name, "score", maxScore)
	}
	s.notifier.Broadcast(h.room.Code, Event{Kind: EventRoundEnded, Payload: payload})
}

// after runs fn under the room lock once the delay elapses. A zero delay runs
// it inline, still under the caller's lock. Delayed callbacks re-resolve the
// room by code first: a destroyed room no longer resolves, which is the
// existence guard that cancels its pending chain. The handle's pending count
// covers the gap between scheduling and firing, so external triggers cannot
// interleave with a chain that is still mid-flight.
func (s *Service) after(h *roomHandle, d time.Duration, fn func(h *roomHandle)) {
	if d <= 0 {
		fn(h)
		return
	}
	h.pending++
	code := h.room.Code
	time.AfterFunc(d, func() {
		cur := s.registry.lookup(code)
		if cur == nil {
			return
		}
		cur.mu.Lock()
		defer cur.mu.Unlock()
		cur.pending--
		fn(cur)
	})
}
