package sim

import (
	"container/heap"
	"fmt"
)

// Road is an undirected edge between two clans. Time is the travel time in
// simulation units and is the same in both directions.
type Road struct {
	From string
	To   string
	Time int
}

func (r Road) String() string {
	return fmt.Sprintf("%s<->%s(%d)", r.From, r.To, r.Time)
}

type edge struct {
	to   string
	time int
}

// Network is the road graph between clans. Parallel roads are kept as
// separate edges; routing considers all of them.
type Network struct {
	adj   map[string][]edge
	roads int
}

// NewNetwork creates an empty road graph.
func NewNetwork() *Network {
	return &Network{adj: make(map[string][]edge)}
}

// AddNode registers a clan with no roads yet.
func (n *Network) AddNode(name string) {
	if _, ok := n.adj[name]; !ok {
		n.adj[name] = nil
	}
}

// HasNode reports whether the clan is part of the graph.
func (n *Network) HasNode(name string) bool {
	_, ok := n.adj[name]
	return ok
}

// AddRoad inserts r in both directions.
func (n *Network) AddRoad(r Road) {
	n.adj[r.From] = append(n.adj[r.From], edge{to: r.To, time: r.Time})
	n.adj[r.To] = append(n.adj[r.To], edge{to: r.From, time: r.Time})
	n.roads++
}

// RoadCount returns the number of roads added, counting duplicates.
func (n *Network) RoadCount() int {
	return n.roads
}

// ShortestTime returns the minimum total travel time from a to b and true,
// or 0 and false when b cannot be reached from a.
// Each call runs Dijkstra from a with fresh state and stops once b is settled.
func (n *Network) ShortestTime(a, b string) (int, bool) {
	if !n.HasNode(a) || !n.HasNode(b) {
		return 0, false
	}
	if a == b {
		return 0, true
	}

	dist := map[string]int{a: 0}
	pq := &distQueue{{node: a, dist: 0}}
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(distItem)
		if d, ok := dist[cur.node]; ok && cur.dist > d {
			continue // stale entry
		}
		if cur.node == b {
			return cur.dist, true
		}
		for _, e := range n.adj[cur.node] {
			nd := cur.dist + e.time
			if d, ok := dist[e.to]; !ok || nd < d {
				dist[e.to] = nd
				heap.Push(pq, distItem{node: e.to, dist: nd})
			}
		}
	}
	return 0, false
}

type distItem struct {
	node string
	dist int
}

// distQueue is a min-heap of tentative distances for ShortestTime.
type distQueue []distItem

func (q distQueue) Len() int           { return len(q) }
func (q distQueue) Less(i, j int) bool { return q[i].dist < q[j].dist }
func (q distQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *distQueue) Push(x any) {
	*q = append(*q, x.(distItem))
}

func (q *distQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
