/*
Package ports defines the driven ports (interfaces) of the fsa pipeline.

These interfaces decouple the validator and the synthesizer from where
descriptions come from and where computed expressions are kept.

# Key Interfaces

  - Loader: Responsible for producing an Automaton from a named source (file, memory).
  - ResultCache: Keeps synthesized expressions by automaton fingerprint (memory, Redis).
*/
package ports
