package identity

import "github.com/kitchenlabs/tckt-backend/pkg/env"

const (
	DefaultPodName  = "unknown-pod"
	DefaultNodeName = "unknown-node"
)

// Identity names the replica handling a request. It is resolved once at
// startup and injected by value; handlers never read the environment directly.
type Identity struct {
	PodName  string
	NodeName string
}

// FromEnv reads the identity the deployment injects via the downward API.
// POD_NAME and NODE_NAME are intentionally unprefixed: Kubernetes manifests
// set them from fieldRefs, not from service configuration.
func FromEnv() Identity {
	return Identity{
		PodName:  env.Get("POD_NAME", DefaultPodName),
		NodeName: env.Get("NODE_NAME", DefaultNodeName),
	}
}
