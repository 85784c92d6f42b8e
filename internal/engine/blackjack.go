package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	blackjackLimit   = 21
	dealerStandScore = 17
	aceHighBonus     = 10
	deckSize         = 52
)

var (
	cardSuits = []string{"♠", "♣", "♥", "♦"}
	cardRanks = []struct {
		rank  string
		score int
	}{
		{"A", 11}, {"2", 2}, {"3", 3}, {"4", 4}, {"5", 5}, {"6", 6}, {"7", 7},
		{"8", 8}, {"9", 9}, {"10", 10}, {"J", 10}, {"Q", 10}, {"K", 10},
	}
)

// Card карта. После раздачи не меняется
type Card struct {
	Suit  string `json:"suit"`
	Rank  string `json:"rank"`
	Score int    `json:"score"`
}

func (c Card) String() string {
	return c.Rank + c.Suit
}

func (c Card) isAce() bool {
	return c.Rank == "A"
}

// NewCard карта по рангу и масти
func NewCard(rank, suit string) (Card, error) {
	for _, r := range cardRanks {
		if r.rank == rank {
			return Card{Suit: suit, Rank: rank, Score: r.score}, nil
		}
	}
	return Card{}, fmt.Errorf("unknown rank %q", rank)
}

// Hand рука. Очки не хранятся, всегда считаются через Score
type Hand []Card

// Deck колода одного раунда. Верх колоды - нулевой элемент
type Deck []Card

// OrderedDeck 52 карты без перемешивания
func OrderedDeck() Deck {
	deck := make(Deck, 0, deckSize)
	for _, suit := range cardSuits {
		for _, r := range cardRanks {
			deck = append(deck, Card{Suit: suit, Rank: r.rank, Score: r.score})
		}
	}
	return deck
}

// NewDeck перемешанная колода на один раунд
func NewDeck(rng RandomSource) Deck {
	deck := OrderedDeck()
	shuffle(rng, len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return deck
}

// draw снимает верхнюю карту, исходная колода не меняется
func (d Deck) draw() (Card, Deck, error) {
	if len(d) == 0 {
		return Card{}, d, ErrDeckExhausted
	}
	return d[0], d[1:], nil
}

// Score считает очки: туз 11, картинки 10.
// Пока перебор и есть туз, посчитанный как 11, пересчитываем его как 1
func Score(hand Hand) int {
	score := 0
	highAces := 0
	for _, c := range hand {
		score += c.Score
		if c.isAce() {
			highAces++
		}
	}
	for score > blackjackLimit && highAces > 0 {
		score -= aceHighBonus
		highAces--
	}
	return score
}

// DealInitialHands раздает по две карты поочередно: игрок, дилер, игрок, дилер
func DealInitialHands(deck Deck) (player, dealer Hand, rest Deck, err error) {
	if len(deck) < 4 {
		return nil, nil, deck, fmt.Errorf("%w: need 4 cards, have %d", ErrDeckExhausted, len(deck))
	}
	player = Hand{deck[0], deck[2]}
	dealer = Hand{deck[1], deck[3]}
	return player, dealer, deck[4:], nil
}

// Hit добирает ровно одну карту. На пустой колоде рука и колода не меняются
func Hit(hand Hand, deck Deck) (Hand, Deck, error) {
	card, rest, err := deck.draw()
	if err != nil {
		return hand, deck, err
	}
	next := make(Hand, len(hand), len(hand)+1)
	copy(next, hand)
	return append(next, card), rest, nil
}

// DealerPlay дилер добирает, пока меньше 17 и есть карты
func DealerPlay(hand Hand, deck Deck) (Hand, Deck) {
	for Score(hand) < dealerStandScore {
		next, rest, err := Hit(hand, deck)
		if err != nil {
			break
		}
		hand, deck = next, rest
	}
	return hand, deck
}

// ResolveBlackjack определяет победителя по очкам
func ResolveBlackjack(playerScore, dealerScore int) Outcome {
	switch {
	case playerScore > blackjackLimit:
		return OutcomeLoss
	case dealerScore > blackjackLimit:
		return OutcomeWin
	case playerScore > dealerScore:
		return OutcomeWin
	case playerScore == dealerScore:
		return OutcomeTie
	default:
		return OutcomeLoss
	}
}

// BlackjackPlay финальные руки игрока и дилера
type BlackjackPlay struct {
	Player Hand
	Dealer Hand
}

func (BlackjackPlay) Game() GameType { return GameBlackjack }

func (p BlackjackPlay) settle(rules Rules) (Outcome, decimal.Decimal, error) {
	if len(p.Player) == 0 || len(p.Dealer) == 0 {
		return "", decimal.Zero, fmt.Errorf("%w: hands are not dealt", ErrNoActiveRound)
	}
	outcome := ResolveBlackjack(Score(p.Player), Score(p.Dealer))
	switch outcome {
	case OutcomeWin:
		return outcome, rules.BlackjackWin, nil
	case OutcomeTie:
		return outcome, multiplierTie, nil
	default:
		return outcome, multiplierLoss, nil
	}
}

// ResolveBlackjackRound результат раунда по финальным рукам
func ResolveBlackjackRound(rules Rules, stake decimal.Decimal, player, dealer Hand) (RoundResult, error) {
	return Resolve(rules, stake, BlackjackPlay{Player: player, Dealer: dealer})
}
