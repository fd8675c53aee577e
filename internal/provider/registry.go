package provider

import (
	"fmt"
	"strings"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
)

// DefaultRoutes is the provider used for each network when no gateway is requested
func DefaultRoutes() map[domain.Network]domain.Provider {
	return map[domain.Network]domain.Provider{
		domain.NetworkMTN:       domain.ProviderGeonettech,
		domain.NetworkATPremium: domain.ProviderHubnet,
		domain.NetworkATBigTime: domain.ProviderHubnet,
		domain.NetworkTelecel:   domain.ProviderTelecel,
	}
}

// ParseRoutes parses overrides like "MTN:hubnet,AT_PREMIUM:geonettech" on top of DefaultRoutes
func ParseRoutes(s string) (map[domain.Network]domain.Provider, error) {
	routes := DefaultRoutes()
	if strings.TrimSpace(s) == "" {
		return routes, nil
	}

	for _, pair := range strings.Split(s, ",") {
		network, name, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok {
			return nil, fmt.Errorf("provider: invalid route %q", pair)
		}
		n, valid := domain.ParseNetwork(network)
		if !valid {
			return nil, fmt.Errorf("provider: unknown network %q in route %q", network, pair)
		}
		routes[n] = domain.Provider(strings.ToLower(strings.TrimSpace(name)))
	}

	return routes, nil
}

// Registry implements domain.ProviderRouter
type Registry struct {
	clients map[domain.Provider]domain.ProviderClient
	routes  map[domain.Network]domain.Provider
}

// NewRegistry creates a Registry. Every route must point to a registered
// client that serves the network.
func NewRegistry(routes map[domain.Network]domain.Provider, clients ...domain.ProviderClient) (*Registry, error) {
	r := &Registry{
		clients: make(map[domain.Provider]domain.ProviderClient, len(clients)),
		routes:  make(map[domain.Network]domain.Provider, len(routes)),
	}
	for _, c := range clients {
		r.clients[c.Name()] = c
	}

	for network, name := range routes {
		c, ok := r.clients[name]
		if !ok {
			return nil, fmt.Errorf("provider: route %s uses unregistered provider %q", network, name)
		}
		if !c.Supports(network) {
			return nil, fmt.Errorf("provider: %s does not serve %s", name, network)
		}
		r.routes[network] = name
	}

	return r, nil
}

// Route returns the client for a network. A non-empty gateway overrides the
// default route when that provider serves the network.
func (r *Registry) Route(network domain.Network, gateway domain.Provider) (domain.ProviderClient, error) {
	if gateway != "" {
		c, ok := r.clients[gateway]
		if !ok {
			return nil, domain.NewValidationError("gateway", fmt.Sprintf("unknown gateway %q", gateway))
		}
		if !c.Supports(network) {
			return nil, domain.NewValidationError("gateway", fmt.Sprintf("%s does not serve %s", gateway, network))
		}
		return c, nil
	}

	name, ok := r.routes[network]
	if !ok {
		return nil, domain.NewValidationError("network", fmt.Sprintf("no provider configured for %s", network))
	}

	return r.clients[name], nil
}

// Get returns a registered client by name
func (r *Registry) Get(name domain.Provider) (domain.ProviderClient, bool) {
	c, ok := r.clients[name]
	return c, ok
}
