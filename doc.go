// Package huffman builds a Huffman code for the characters of a text and
// uses it to translate the text into a string of '0' and '1' characters and
// back again.
//
// The work happens in four stages, each a plain function of its inputs:
//
//     Count   text -> FrequencyMap
//     Build   FrequencyMap -> *Tree
//     Assign  *Tree -> CodeMap
//     Encode  text + CodeMap -> encoded string  (Decode is the inverse)
//
// Run chains all four and checks that decoding reproduces the input.
//
// The encoded form stores one ASCII character per bit.  Nothing is packed
// into bytes.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
