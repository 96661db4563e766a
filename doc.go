/*
Package casa is a Model Context Protocol (MCP) gateway for Home Assistant.

It advertises a fixed catalogue of schema-described tools (list devices,
inspect state, control lights, switches and climate devices) and executes
each invocation by translating it into calls against the Home Assistant
REST API. AI agents that speak MCP (Claude Desktop, IDE assistants, custom
hosts) can therefore observe and control a home without knowing anything
about the backing REST surface.

# Architecture

The repository follows a hexagonal layout:

  - pkg/tools holds the tool catalogue: a registry mapping each tool name
    to its MCP schema, a typed argument decoder and a translation routine.
  - pkg/homeassistant is the gateway owning the network relationship to the
    Home Assistant API (bearer auth, TLS policy, deadlines, read retries).
  - pkg/dispatch validates and routes invocations, guaranteeing that every
    call terminates in a well-formed text response.
  - pkg/render normalizes gateway results into the textual content blocks
    returned over the protocol.
  - pkg/adapters/mcp exposes the dispatcher over stdio or SSE transports.

The casa binary under cmd/casa wires these together from environment and
file configuration.
*/
package casa
