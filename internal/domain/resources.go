package domain

import "math/rand"

// CanAfford reports whether the player holds every resource in cost.
func CanAfford(p *Player, cost ResourceSet) bool {
	for r, n := range cost {
		if p.Resources[r] < n {
			return false
		}
	}
	return true
}

// Pay moves cost from the player's hand back to the bank. Returns
// false, untouched, if the player cannot afford it.
func Pay(p *Player, bank ResourceSet, cost ResourceSet) bool {
	if !CanAfford(p, cost) {
		return false
	}
	for r, n := range cost {
		p.Resources[r] -= n
		bank[r] += n
	}
	return true
}

// Grant moves up to n of a resource from the bank to the player and
// returns how many were actually granted. The bank never goes negative.
func Grant(bank ResourceSet, p *Player, r ResourceType, n int) int {
	if n > bank[r] {
		n = bank[r]
	}
	if n <= 0 {
		return 0
	}
	bank[r] -= n
	p.Resources[r] += n
	return n
}

// DistributeForRoll pays out production for a dice roll. A roll of 7
// distributes nothing. Each producing tile with a matching token and no
// robber pays 1 per adjacent settlement and 2 per adjacent city, capped
// by what the bank still holds. Returns resources gained per player id.
func DistributeForRoll(s *GameState, roll int) map[string]ResourceSet {
	gains := make(map[string]ResourceSet)
	if roll == 7 {
		return gains
	}
	for _, tile := range s.Board.Tiles {
		if tile.Token != roll || tile.HasRobber {
			continue
		}
		res := tile.Terrain.Resource()
		if res == ResourceNone {
			continue
		}
		for _, corner := range s.Board.CornersOf(tile.Position) {
			if corner.Building == nil {
				continue
			}
			owner := s.PlayerByID(corner.Building.OwnerID)
			if owner == nil {
				continue
			}
			amount := 1
			if corner.Building.Type == BuildingCity {
				amount = 2
			}
			got := Grant(s.Bank, owner, res, amount)
			if got == 0 {
				continue
			}
			if gains[owner.ID] == nil {
				gains[owner.ID] = make(ResourceSet)
			}
			gains[owner.ID][res] += got
		}
	}
	return gains
}

// DiscardHalf removes floor(total/2) random cards from a player holding
// more than MaxHandBeforeDiscard, returning them to the bank. Returns
// what was discarded, empty when the player is under the limit.
func DiscardHalf(rng *rand.Rand, p *Player, bank ResourceSet) ResourceSet {
	discarded := make(ResourceSet)
	total := p.Resources.Total()
	if total <= MaxHandBeforeDiscard {
		return discarded
	}
	for i := 0; i < total/2; i++ {
		r := randomHeldResource(rng, p)
		if r == ResourceNone {
			break
		}
		p.Resources[r]--
		bank[r]++
		discarded[r]++
	}
	return discarded
}

// StealRandom moves one uniformly random card from victim to thief.
// Returns the stolen resource, or ResourceNone on an empty hand.
func StealRandom(rng *rand.Rand, victim, thief *Player) ResourceType {
	r := randomHeldResource(rng, victim)
	if r == ResourceNone {
		return ResourceNone
	}
	victim.Resources[r]--
	thief.Resources[r]++
	return r
}

func randomHeldResource(rng *rand.Rand, p *Player) ResourceType {
	total := p.Resources.Total()
	if total == 0 {
		return ResourceNone
	}
	pick := rng.Intn(total)
	for _, r := range ResourceTypes {
		pick -= p.Resources[r]
		if pick < 0 {
			return r
		}
	}
	return ResourceNone
}
