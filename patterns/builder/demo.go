package builder

import (
	"errors"
	"io"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// Demo builds a basic, an auto-upgrading and a complete cluster, then shows a rejected build.
func Demo(w io.Writer) error {
	out := transcript.New(w)

	clusters := []*KubernetesCluster{
		NewClusterBuilder("my-cluster", "1.25.0").MustBuild(),
		NewClusterBuilder("my-cluster", "1.25.0").AutoUpgrade(true).MustBuild(),
		NewClusterBuilder("my-cluster", "1.25.0").AutoUpgrade(true).NodePool("Node1").MustBuild(),
	}
	for _, c := range clusters {
		pool := "none"
		if c.NodePool != nil {
			pool = *c.NodePool
		}
		out.Printf("cluster %s version=%s auto_upgrade=%t node_pool=%s\n", c.Name, c.Version, c.AutoUpgrade, pool)
	}

	_, err := NewClusterBuilder("", "1.25.0").Build()
	var missing MissingFieldError
	if errors.As(err, &missing) {
		out.Println("rejected:", err)
	}

	return out.Err()
}
