/*
Package domain contains the value types shared by the validator, the regex
synthesizer and the adapters.

It defines the automaton description itself and the stable error and warning
codes reported about it. This package is kept pure and free of I/O.

# Key Entities

  - Automaton: states, alphabet, optional initial state, final states, transitions.
  - Transition: a (from, symbol, to) triple, written "from>symbol>to" in text form.
  - Code: the E1..E6 / W1..W3 identifiers and their messages.
  - Outcome: what validation produced (a blocking Error, or warnings plus completeness).
*/
package domain
