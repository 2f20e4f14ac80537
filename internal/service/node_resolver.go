package service

import (
	"github.com/MKhiriev/watchface-sync/models"
)

// SelectBestCompanionNode picks the node to talk to out of the nodes
// advertising the companion capability. Nearby nodes win; among equals the
// smallest ID wins, then the smallest display name. The result does not
// depend on the order of nodes and nodes is not modified.
func SelectBestCompanionNode(nodes []models.Node) (models.Node, bool) {
	if len(nodes) == 0 {
		return models.Node{}, false
	}

	best := nodes[0]
	for _, node := range nodes[1:] {
		if betterNode(node, best) {
			best = node
		}
	}
	return best, true
}

func betterNode(a, b models.Node) bool {
	if a.Nearby != b.Nearby {
		return a.Nearby
	}
	if a.ID != b.ID {
		return a.ID < b.ID
	}
	return a.DisplayName < b.DisplayName
}
