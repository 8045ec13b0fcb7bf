// Package model defines the provider-agnostic abstractions and concrete
// helpers for interacting with language models inside TravelMesh.
//
// Core goals:
//   - A single synchronous Generate behind the Model interface
//   - Normalized tool / function call representation (ToolDecl, ToolCall)
//   - Minimal, transport independent request/response shapes
//   - Lightweight mocking for tests (MockModel)
//
// Providers (e.g. OpenAI, Anthropic) implement the Model interface from this
// package so higher layers (agents, the coordinator) remain decoupled from
// vendor SDKs.
package model
