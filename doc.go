/*
Package go.rtnl.ai/stem hosts a family of Snowball-style suffix-stripping
stemmers and the small set of text-analysis helpers (tokenizing, vectorizing,
and type counting) that consume them. It is descended from go.rtnl.ai/x, the
Rotational Labs grab-bag of independent, separately-tested Go libraries, and
keeps that repo's "no dependency without a concrete grounding" ethos.

The stemming implementations live in the quant package. Each per-language
stemmer is a pure function of a single word: no I/O, no shared state, and no
tokenization or locale detection of its own. See the quant package
documentation for the full language list and the Stemmer interface.
*/
package stem
