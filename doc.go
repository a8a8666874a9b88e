// Package huffcoder implements a prefix-free entropy coder built on Huffman
// trees.  Frequencies are counted with Analyze, the optimal tree is built with
// Build, codewords are derived with NewCodeTable, and messages go through
// Encode and Decode.
//
// Ties between equal weights are broken deterministically, so the same
// FrequencyTable always yields the same Tree and the same CodeTable.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     D. A. Huffman, "A Method for the Construction of Minimum-Redundancy
//     Codes", Proceedings of the IRE, 1952.
//
package huffcoder
