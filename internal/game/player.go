package game

type Player struct {
	id       string
	name     string
	isDealer bool
}

func NewPlayer(id string, name string) *Player {
	return &Player{id: id, name: name}
}

func NewDealer() *Player {
	return &Player{id: "dealer", name: "Dealer", isDealer: true}
}

func (p *Player) ID() string {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) IsDealer() bool {
	return p.isDealer
}
