// Code generated from the WHATWG named character reference list
// (https://html.spec.whatwg.org/multipage/named-characters.html). DO NOT EDIT.

package htmlescape

import "github.com/sunwei/textescape/escape/symbol"

// html5References holds every named character reference defined by HTML5,
// including the legacy semicolon-less aliases and the two-codepoint
// references. Names carry the marker and, where defined, the terminator.
var html5References = []symbol.Reference{
	{Name: "&AElig", Codepoints: []rune{0x00C6}},
	{Name: "&AElig;", Codepoints: []rune{0x00C6}},
	{Name: "&AMP", Codepoints: []rune{0x0026}},
	{Name: "&AMP;", Codepoints: []rune{0x0026}},
	{Name: "&Aacute", Codepoints: []rune{0x00C1}},
	{Name: "&Aacute;", Codepoints: []rune{0x00C1}},
	{Name: "&Abreve;", Codepoints: []rune{0x0102}},
	{Name: "&Acirc", Codepoints: []rune{0x00C2}},
	{Name: "&Acirc;", Codepoints: []rune{0x00C2}},
	{Name: "&Acy;", Codepoints: []rune{0x0410}},
	{Name: "&Afr;", Codepoints: []rune{0x1D504}},
	{Name: "&Agrave", Codepoints: []rune{0x00C0}},
	{Name: "&Agrave;", Codepoints: []rune{0x00C0}},
	{Name: "&Alpha;", Codepoints: []rune{0x0391}},
	{Name: "&Amacr;", Codepoints: []rune{0x0100}},
	{Name: "&And;", Codepoints: []rune{0x2A53}},
	{Name: "&Aogon;", Codepoints: []rune{0x0104}},
	{Name: "&Aopf;", Codepoints: []rune{0x1D538}},
	{Name: "&ApplyFunction;", Codepoints: []rune{0x2061}},
	{Name: "&Aring", Codepoints: []rune{0x00C5}},
	{Name: "&Aring;", Codepoints: []rune{0x00C5}},
	{Name: "&Ascr;", Codepoints: []rune{0x1D49C}},
	{Name: "&Assign;", Codepoints: []rune{0x2254}},
	{Name: "&Atilde", Codepoints: []rune{0x00C3}},
	{Name: "&Atilde;", Codepoints: []rune{0x00C3}},
	{Name: "&Auml", Codepoints: []rune{0x00C4}},
	{Name: "&Auml;", Codepoints: []rune{0x00C4}},
	{Name: "&Backslash;", Codepoints: []rune{0x2216}},
	{Name: "&Barv;", Codepoints: []rune{0x2AE7}},
	{Name: "&Barwed;", Codepoints: []rune{0x2306}},
	{Name: "&Bcy;", Codepoints: []rune{0x0411}},
	{Name: "&Because;", Codepoints: []rune{0x2235}},
	{Name: "&Bernoullis;", Codepoints: []rune{0x212C}},
	{Name: "&Beta;", Codepoints: []rune{0x0392}},
	{Name: "&Bfr;", Codepoints: []rune{0x1D505}},
	{Name: "&Bopf;", Codepoints: []rune{0x1D539}},
	{Name: "&Breve;", Codepoints: []rune{0x02D8}},
	{Name: "&Bscr;", Codepoints: []rune{0x212C}},
	{Name: "&Bumpeq;", Codepoints: []rune{0x224E}},
	{Name: "&CHcy;", Codepoints: []rune{0x0427}},
	{Name: "&COPY", Codepoints: []rune{0x00A9}},
	{Name: "&COPY;", Codepoints: []rune{0x00A9}},
	{Name: "&Cacute;", Codepoints: []rune{0x0106}},
	{Name: "&Cap;", Codepoints: []rune{0x22D2}},
	{Name: "&CapitalDifferentialD;", Codepoints: []rune{0x2145}},
	{Name: "&Cayleys;", Codepoints: []rune{0x212D}},
	{Name: "&Ccaron;", Codepoints: []rune{0x010C}},
	{Name: "&Ccedil", Codepoints: []rune{0x00C7}},
	{Name: "&Ccedil;", Codepoints: []rune{0x00C7}},
	{Name: "&Ccirc;", Codepoints: []rune{0x0108}},
	{Name: "&Cconint;", Codepoints: []rune{0x2230}},
	{Name: "&Cdot;", Codepoints: []rune{0x010A}},
	{Name: "&Cedilla;", Codepoints: []rune{0x00B8}},
	{Name: "&CenterDot;", Codepoints: []rune{0x00B7}},
	{Name: "&Cfr;", Codepoints: []rune{0x212D}},
	{Name: "&Chi;", Codepoints: []rune{0x03A7}},
	{Name: "&CircleDot;", Codepoints: []rune{0x2299}},
	{Name: "&CircleMinus;", Codepoints: []rune{0x2296}},
	{Name: "&CirclePlus;", Codepoints: []rune{0x2295}},
	{Name: "&CircleTimes;", Codepoints: []rune{0x2297}},
	{Name: "&ClockwiseContourIntegral;", Codepoints: []rune{0x2232}},
	{Name: "&CloseCurlyDoubleQuote;", Codepoints: []rune{0x201D}},
	{Name: "&CloseCurlyQuote;", Codepoints: []rune{0x2019}},
	{Name: "&Colon;", Codepoints: []rune{0x2237}},
	{Name: "&Colone;", Codepoints: []rune{0x2A74}},
	{Name: "&Congruent;", Codepoints: []rune{0x2261}},
	{Name: "&Conint;", Codepoints: []rune{0x222F}},
	{Name: "&ContourIntegral;", Codepoints: []rune{0x222E}},
	{Name: "&Copf;", Codepoints: []rune{0x2102}},
	{Name: "&Coproduct;", Codepoints: []rune{0x2210}},
	{Name: "&CounterClockwiseContourIntegral;", Codepoints: []rune{0x2233}},
	{Name: "&Cross;", Codepoints: []rune{0x2A2F}},
	{Name: "&Cscr;", Codepoints: []rune{0x1D49E}},
	{Name: "&Cup;", Codepoints: []rune{0x22D3}},
	{Name: "&CupCap;", Codepoints: []rune{0x224D}},
	{Name: "&DD;", Codepoints: []rune{0x2145}},
	{Name: "&DDotrahd;", Codepoints: []rune{0x2911}},
	{Name: "&DJcy;", Codepoints: []rune{0x0402}},
	{Name: "&DScy;", Codepoints: []rune{0x0405}},
	{Name: "&DZcy;", Codepoints: []rune{0x040F}},
	{Name: "&Dagger;", Codepoints: []rune{0x2021}},
	{Name: "&Darr;", Codepoints: []rune{0x21A1}},
	{Name: "&Dashv;", Codepoints: []rune{0x2AE4}},
	{Name: "&Dcaron;", Codepoints: []rune{0x010E}},
	{Name: "&Dcy;", Codepoints: []rune{0x0414}},
	{Name: "&Del;", Codepoints: []rune{0x2207}},
	{Name: "&Delta;", Codepoints: []rune{0x0394}},
	{Name: "&Dfr;", Codepoints: []rune{0x1D507}},
	{Name: "&DiacriticalAcute;", Codepoints: []rune{0x00B4}},
	{Name: "&DiacriticalDot;", Codepoints: []rune{0x02D9}},
	{Name: "&DiacriticalDoubleAcute;", Codepoints: []rune{0x02DD}},
	{Name: "&DiacriticalGrave;", Codepoints: []rune{0x0060}},
	{Name: "&DiacriticalTilde;", Codepoints: []rune{0x02DC}},
	{Name: "&Diamond;", Codepoints: []rune{0x22C4}},
	{Name: "&DifferentialD;", Codepoints: []rune{0x2146}},
	{Name: "&Dopf;", Codepoints: []rune{0x1D53B}},
	{Name: "&Dot;", Codepoints: []rune{0x00A8}},
	{Name: "&DotDot;", Codepoints: []rune{0x20DC}},
	{Name: "&DotEqual;", Codepoints: []rune{0x2250}},
	{Name: "&DoubleContourIntegral;", Codepoints: []rune{0x222F}},
	{Name: "&DoubleDot;", Codepoints: []rune{0x00A8}},
	{Name: "&DoubleDownArrow;", Codepoints: []rune{0x21D3}},
	{Name: "&DoubleLeftArrow;", Codepoints: []rune{0x21D0}},
	{Name: "&DoubleLeftRightArrow;", Codepoints: []rune{0x21D4}},
	{Name: "&DoubleLeftTee;", Codepoints: []rune{0x2AE4}},
	{Name: "&DoubleLongLeftArrow;", Codepoints: []rune{0x27F8}},
	{Name: "&DoubleLongLeftRightArrow;", Codepoints: []rune{0x27FA}},
	{Name: "&DoubleLongRightArrow;", Codepoints: []rune{0x27F9}},
	{Name: "&DoubleRightArrow;", Codepoints: []rune{0x21D2}},
	{Name: "&DoubleRightTee;", Codepoints: []rune{0x22A8}},
	{Name: "&DoubleUpArrow;", Codepoints: []rune{0x21D1}},
	{Name: "&DoubleUpDownArrow;", Codepoints: []rune{0x21D5}},
	{Name: "&DoubleVerticalBar;", Codepoints: []rune{0x2225}},
	{Name: "&DownArrow;", Codepoints: []rune{0x2193}},
	{Name: "&DownArrowBar;", Codepoints: []rune{0x2913}},
	{Name: "&DownArrowUpArrow;", Codepoints: []rune{0x21F5}},
	{Name: "&DownBreve;", Codepoints: []rune{0x0311}},
	{Name: "&DownLeftRightVector;", Codepoints: []rune{0x2950}},
	{Name: "&DownLeftTeeVector;", Codepoints: []rune{0x295E}},
	{Name: "&DownLeftVector;", Codepoints: []rune{0x21BD}},
	{Name: "&DownLeftVectorBar;", Codepoints: []rune{0x2956}},
	{Name: "&DownRightTeeVector;", Codepoints: []rune{0x295F}},
	{Name: "&DownRightVector;", Codepoints: []rune{0x21C1}},
	{Name: "&DownRightVectorBar;", Codepoints: []rune{0x2957}},
	{Name: "&DownTee;", Codepoints: []rune{0x22A4}},
	{Name: "&DownTeeArrow;", Codepoints: []rune{0x21A7}},
	{Name: "&Downarrow;", Codepoints: []rune{0x21D3}},
	{Name: "&Dscr;", Codepoints: []rune{0x1D49F}},
	{Name: "&Dstrok;", Codepoints: []rune{0x0110}},
	{Name: "&ENG;", Codepoints: []rune{0x014A}},
	{Name: "&ETH", Codepoints: []rune{0x00D0}},
	{Name: "&ETH;", Codepoints: []rune{0x00D0}},
	{Name: "&Eacute", Codepoints: []rune{0x00C9}},
	{Name: "&Eacute;", Codepoints: []rune{0x00C9}},
	{Name: "&Ecaron;", Codepoints: []rune{0x011A}},
	{Name: "&Ecirc", Codepoints: []rune{0x00CA}},
	{Name: "&Ecirc;", Codepoints: []rune{0x00CA}},
	{Name: "&Ecy;", Codepoints: []rune{0x042D}},
	{Name: "&Edot;", Codepoints: []rune{0x0116}},
	{Name: "&Efr;", Codepoints: []rune{0x1D508}},
	{Name: "&Egrave", Codepoints: []rune{0x00C8}},
	{Name: "&Egrave;", Codepoints: []rune{0x00C8}},
	{Name: "&Element;", Codepoints: []rune{0x2208}},
	{Name: "&Emacr;", Codepoints: []rune{0x0112}},
	{Name: "&EmptySmallSquare;", Codepoints: []rune{0x25FB}},
	{Name: "&EmptyVerySmallSquare;", Codepoints: []rune{0x25AB}},
	{Name: "&Eogon;", Codepoints: []rune{0x0118}},
	{Name: "&Eopf;", Codepoints: []rune{0x1D53C}},
	{Name: "&Epsilon;", Codepoints: []rune{0x0395}},
	{Name: "&Equal;", Codepoints: []rune{0x2A75}},
	{Name: "&EqualTilde;", Codepoints: []rune{0x2242}},
	{Name: "&Equilibrium;", Codepoints: []rune{0x21CC}},
	{Name: "&Escr;", Codepoints: []rune{0x2130}},
	{Name: "&Esim;", Codepoints: []rune{0x2A73}},
	{Name: "&Eta;", Codepoints: []rune{0x0397}},
	{Name: "&Euml", Codepoints: []rune{0x00CB}},
	{Name: "&Euml;", Codepoints: []rune{0x00CB}},
	{Name: "&Exists;", Codepoints: []rune{0x2203}},
	{Name: "&ExponentialE;", Codepoints: []rune{0x2147}},
	{Name: "&Fcy;", Codepoints: []rune{0x0424}},
	{Name: "&Ffr;", Codepoints: []rune{0x1D509}},
	{Name: "&FilledSmallSquare;", Codepoints: []rune{0x25FC}},
	{Name: "&FilledVerySmallSquare;", Codepoints: []rune{0x25AA}},
	{Name: "&Fopf;", Codepoints: []rune{0x1D53D}},
	{Name: "&ForAll;", Codepoints: []rune{0x2200}},
	{Name: "&Fouriertrf;", Codepoints: []rune{0x2131}},
	{Name: "&Fscr;", Codepoints: []rune{0x2131}},
	{Name: "&GJcy;", Codepoints: []rune{0x0403}},
	{Name: "&GT", Codepoints: []rune{0x003E}},
	{Name: "&GT;", Codepoints: []rune{0x003E}},
	{Name: "&Gamma;", Codepoints: []rune{0x0393}},
	{Name: "&Gammad;", Codepoints: []rune{0x03DC}},
	{Name: "&Gbreve;", Codepoints: []rune{0x011E}},
	{Name: "&Gcedil;", Codepoints: []rune{0x0122}},
	{Name: "&Gcirc;", Codepoints: []rune{0x011C}},
	{Name: "&Gcy;", Codepoints: []rune{0x0413}},
	{Name: "&Gdot;", Codepoints: []rune{0x0120}},
	{Name: "&Gfr;", Codepoints: []rune{0x1D50A}},
	{Name: "&Gg;", Codepoints: []rune{0x22D9}},
	{Name: "&Gopf;", Codepoints: []rune{0x1D53E}},
	{Name: "&GreaterEqual;", Codepoints: []rune{0x2265}},
	{Name: "&GreaterEqualLess;", Codepoints: []rune{0x22DB}},
	{Name: "&GreaterFullEqual;", Codepoints: []rune{0x2267}},
	{Name: "&GreaterGreater;", Codepoints: []rune{0x2AA2}},
	{Name: "&GreaterLess;", Codepoints: []rune{0x2277}},
	{Name: "&GreaterSlantEqual;", Codepoints: []rune{0x2A7E}},
	{Name: "&GreaterTilde;", Codepoints: []rune{0x2273}},
	{Name: "&Gscr;", Codepoints: []rune{0x1D4A2}},
	{Name: "&Gt;", Codepoints: []rune{0x226B}},
	{Name: "&HARDcy;", Codepoints: []rune{0x042A}},
	{Name: "&Hacek;", Codepoints: []rune{0x02C7}},
	{Name: "&Hat;", Codepoints: []rune{0x005E}},
	{Name: "&Hcirc;", Codepoints: []rune{0x0124}},
	{Name: "&Hfr;", Codepoints: []rune{0x210C}},
	{Name: "&HilbertSpace;", Codepoints: []rune{0x210B}},
	{Name: "&Hopf;", Codepoints: []rune{0x210D}},
	{Name: "&HorizontalLine;", Codepoints: []rune{0x2500}},
	{Name: "&Hscr;", Codepoints: []rune{0x210B}},
	{Name: "&Hstrok;", Codepoints: []rune{0x0126}},
	{Name: "&HumpDownHump;", Codepoints: []rune{0x224E}},
	{Name: "&HumpEqual;", Codepoints: []rune{0x224F}},
	{Name: "&IEcy;", Codepoints: []rune{0x0415}},
	{Name: "&IJlig;", Codepoints: []rune{0x0132}},
	{Name: "&IOcy;", Codepoints: []rune{0x0401}},
	{Name: "&Iacute", Codepoints: []rune{0x00CD}},
	{Name: "&Iacute;", Codepoints: []rune{0x00CD}},
	{Name: "&Icirc", Codepoints: []rune{0x00CE}},
	{Name: "&Icirc;", Codepoints: []rune{0x00CE}},
	{Name: "&Icy;", Codepoints: []rune{0x0418}},
	{Name: "&Idot;", Codepoints: []rune{0x0130}},
	{Name: "&Ifr;", Codepoints: []rune{0x2111}},
	{Name: "&Igrave", Codepoints: []rune{0x00CC}},
	{Name: "&Igrave;", Codepoints: []rune{0x00CC}},
	{Name: "&Im;", Codepoints: []rune{0x2111}},
	{Name: "&Imacr;", Codepoints: []rune{0x012A}},
	{Name: "&ImaginaryI;", Codepoints: []rune{0x2148}},
	{Name: "&Implies;", Codepoints: []rune{0x21D2}},
	{Name: "&Int;", Codepoints: []rune{0x222C}},
	{Name: "&Integral;", Codepoints: []rune{0x222B}},
	{Name: "&Intersection;", Codepoints: []rune{0x22C2}},
	{Name: "&InvisibleComma;", Codepoints: []rune{0x2063}},
	{Name: "&InvisibleTimes;", Codepoints: []rune{0x2062}},
	{Name: "&Iogon;", Codepoints: []rune{0x012E}},
	{Name: "&Iopf;", Codepoints: []rune{0x1D540}},
	{Name: "&Iota;", Codepoints: []rune{0x0399}},
	{Name: "&Iscr;", Codepoints: []rune{0x2110}},
	{Name: "&Itilde;", Codepoints: []rune{0x0128}},
	{Name: "&Iukcy;", Codepoints: []rune{0x0406}},
	{Name: "&Iuml", Codepoints: []rune{0x00CF}},
	{Name: "&Iuml;", Codepoints: []rune{0x00CF}},
	{Name: "&Jcirc;", Codepoints: []rune{0x0134}},
	{Name: "&Jcy;", Codepoints: []rune{0x0419}},
	{Name: "&Jfr;", Codepoints: []rune{0x1D50D}},
	{Name: "&Jopf;", Codepoints: []rune{0x1D541}},
	{Name: "&Jscr;", Codepoints: []rune{0x1D4A5}},
	{Name: "&Jsercy;", Codepoints: []rune{0x0408}},
	{Name: "&Jukcy;", Codepoints: []rune{0x0404}},
	{Name: "&KHcy;", Codepoints: []rune{0x0425}},
	{Name: "&KJcy;", Codepoints: []rune{0x040C}},
	{Name: "&Kappa;", Codepoints: []rune{0x039A}},
	{Name: "&Kcedil;", Codepoints: []rune{0x0136}},
	{Name: "&Kcy;", Codepoints: []rune{0x041A}},
	{Name: "&Kfr;", Codepoints: []rune{0x1D50E}},
	{Name: "&Kopf;", Codepoints: []rune{0x1D542}},
	{Name: "&Kscr;", Codepoints: []rune{0x1D4A6}},
	{Name: "&LJcy;", Codepoints: []rune{0x0409}},
	{Name: "&LT", Codepoints: []rune{0x003C}},
	{Name: "&LT;", Codepoints: []rune{0x003C}},
	{Name: "&Lacute;", Codepoints: []rune{0x0139}},
	{Name: "&Lambda;", Codepoints: []rune{0x039B}},
	{Name: "&Lang;", Codepoints: []rune{0x27EA}},
	{Name: "&Laplacetrf;", Codepoints: []rune{0x2112}},
	{Name: "&Larr;", Codepoints: []rune{0x219E}},
	{Name: "&Lcaron;", Codepoints: []rune{0x013D}},
	{Name: "&Lcedil;", Codepoints: []rune{0x013B}},
	{Name: "&Lcy;", Codepoints: []rune{0x041B}},
	{Name: "&LeftAngleBracket;", Codepoints: []rune{0x27E8}},
	{Name: "&LeftArrow;", Codepoints: []rune{0x2190}},
	{Name: "&LeftArrowBar;", Codepoints: []rune{0x21E4}},
	{Name: "&LeftArrowRightArrow;", Codepoints: []rune{0x21C6}},
	{Name: "&LeftCeiling;", Codepoints: []rune{0x2308}},
	{Name: "&LeftDoubleBracket;", Codepoints: []rune{0x27E6}},
	{Name: "&LeftDownTeeVector;", Codepoints: []rune{0x2961}},
	{Name: "&LeftDownVector;", Codepoints: []rune{0x21C3}},
	{Name: "&LeftDownVectorBar;", Codepoints: []rune{0x2959}},
	{Name: "&LeftFloor;", Codepoints: []rune{0x230A}},
	{Name: "&LeftRightArrow;", Codepoints: []rune{0x2194}},
	{Name: "&LeftRightVector;", Codepoints: []rune{0x294E}},
	{Name: "&LeftTee;", Codepoints: []rune{0x22A3}},
	{Name: "&LeftTeeArrow;", Codepoints: []rune{0x21A4}},
	{Name: "&LeftTeeVector;", Codepoints: []rune{0x295A}},
	{Name: "&LeftTriangle;", Codepoints: []rune{0x22B2}},
	{Name: "&LeftTriangleBar;", Codepoints: []rune{0x29CF}},
	{Name: "&LeftTriangleEqual;", Codepoints: []rune{0x22B4}},
	{Name: "&LeftUpDownVector;", Codepoints: []rune{0x2951}},
	{Name: "&LeftUpTeeVector;", Codepoints: []rune{0x2960}},
	{Name: "&LeftUpVector;", Codepoints: []rune{0x21BF}},
	{Name: "&LeftUpVectorBar;", Codepoints: []rune{0x2958}},
	{Name: "&LeftVector;", Codepoints: []rune{0x21BC}},
	{Name: "&LeftVectorBar;", Codepoints: []rune{0x2952}},
	{Name: "&Leftarrow;", Codepoints: []rune{0x21D0}},
	{Name: "&Leftrightarrow;", Codepoints: []rune{0x21D4}},
	{Name: "&LessEqualGreater;", Codepoints: []rune{0x22DA}},
	{Name: "&LessFullEqual;", Codepoints: []rune{0x2266}},
	{Name: "&LessGreater;", Codepoints: []rune{0x2276}},
	{Name: "&LessLess;", Codepoints: []rune{0x2AA1}},
	{Name: "&LessSlantEqual;", Codepoints: []rune{0x2A7D}},
	{Name: "&LessTilde;", Codepoints: []rune{0x2272}},
	{Name: "&Lfr;", Codepoints: []rune{0x1D50F}},
	{Name: "&Ll;", Codepoints: []rune{0x22D8}},
	{Name: "&Lleftarrow;", Codepoints: []rune{0x21DA}},
	{Name: "&Lmidot;", Codepoints: []rune{0x013F}},
	{Name: "&LongLeftArrow;", Codepoints: []rune{0x27F5}},
	{Name: "&LongLeftRightArrow;", Codepoints: []rune{0x27F7}},
	{Name: "&LongRightArrow;", Codepoints: []rune{0x27F6}},
	{Name: "&Longleftarrow;", Codepoints: []rune{0x27F8}},
	{Name: "&Longleftrightarrow;", Codepoints: []rune{0x27FA}},
	{Name: "&Longrightarrow;", Codepoints: []rune{0x27F9}},
	{Name: "&Lopf;", Codepoints: []rune{0x1D543}},
	{Name: "&LowerLeftArrow;", Codepoints: []rune{0x2199}},
	{Name: "&LowerRightArrow;", Codepoints: []rune{0x2198}},
	{Name: "&Lscr;", Codepoints: []rune{0x2112}},
	{Name: "&Lsh;", Codepoints: []rune{0x21B0}},
	{Name: "&Lstrok;", Codepoints: []rune{0x0141}},
	{Name: "&Lt;", Codepoints: []rune{0x226A}},
	{Name: "&Map;", Codepoints: []rune{0x2905}},
	{Name: "&Mcy;", Codepoints: []rune{0x041C}},
	{Name: "&MediumSpace;", Codepoints: []rune{0x205F}},
	{Name: "&Mellintrf;", Codepoints: []rune{0x2133}},
	{Name: "&Mfr;", Codepoints: []rune{0x1D510}},
	{Name: "&MinusPlus;", Codepoints: []rune{0x2213}},
	{Name: "&Mopf;", Codepoints: []rune{0x1D544}},
	{Name: "&Mscr;", Codepoints: []rune{0x2133}},
	{Name: "&Mu;", Codepoints: []rune{0x039C}},
	{Name: "&NJcy;", Codepoints: []rune{0x040A}},
	{Name: "&Nacute;", Codepoints: []rune{0x0143}},
	{Name: "&Ncaron;", Codepoints: []rune{0x0147}},
	{Name: "&Ncedil;", Codepoints: []rune{0x0145}},
	{Name: "&Ncy;", Codepoints: []rune{0x041D}},
	{Name: "&NegativeMediumSpace;", Codepoints: []rune{0x200B}},
	{Name: "&NegativeThickSpace;", Codepoints: []rune{0x200B}},
	{Name: "&NegativeThinSpace;", Codepoints: []rune{0x200B}},
	{Name: "&NegativeVeryThinSpace;", Codepoints: []rune{0x200B}},
	{Name: "&NestedGreaterGreater;", Codepoints: []rune{0x226B}},
	{Name: "&NestedLessLess;", Codepoints: []rune{0x226A}},
	{Name: "&NewLine;", Codepoints: []rune{0x000A}},
	{Name: "&Nfr;", Codepoints: []rune{0x1D511}},
	{Name: "&NoBreak;", Codepoints: []rune{0x2060}},
	{Name: "&NonBreakingSpace;", Codepoints: []rune{0x00A0}},
	{Name: "&Nopf;", Codepoints: []rune{0x2115}},
	{Name: "&Not;", Codepoints: []rune{0x2AEC}},
	{Name: "&NotCongruent;", Codepoints: []rune{0x2262}},
	{Name: "&NotCupCap;", Codepoints: []rune{0x226D}},
	{Name: "&NotDoubleVerticalBar;", Codepoints: []rune{0x2226}},
	{Name: "&NotElement;", Codepoints: []rune{0x2209}},
	{Name: "&NotEqual;", Codepoints: []rune{0x2260}},
	{Name: "&NotEqualTilde;", Codepoints: []rune{0x2242, 0x0338}},
	{Name: "&NotExists;", Codepoints: []rune{0x2204}},
	{Name: "&NotGreater;", Codepoints: []rune{0x226F}},
	{Name: "&NotGreaterEqual;", Codepoints: []rune{0x2271}},
	{Name: "&NotGreaterFullEqual;", Codepoints: []rune{0x2267, 0x0338}},
	{Name: "&NotGreaterGreater;", Codepoints: []rune{0x226B, 0x0338}},
	{Name: "&NotGreaterLess;", Codepoints: []rune{0x2279}},
	{Name: "&NotGreaterSlantEqual;", Codepoints: []rune{0x2A7E, 0x0338}},
	{Name: "&NotGreaterTilde;", Codepoints: []rune{0x2275}},
	{Name: "&NotHumpDownHump;", Codepoints: []rune{0x224E, 0x0338}},
	{Name: "&NotHumpEqual;", Codepoints: []rune{0x224F, 0x0338}},
	{Name: "&NotLeftTriangle;", Codepoints: []rune{0x22EA}},
	{Name: "&NotLeftTriangleBar;", Codepoints: []rune{0x29CF, 0x0338}},
	{Name: "&NotLeftTriangleEqual;", Codepoints: []rune{0x22EC}},
	{Name: "&NotLess;", Codepoints: []rune{0x226E}},
	{Name: "&NotLessEqual;", Codepoints: []rune{0x2270}},
	{Name: "&NotLessGreater;", Codepoints: []rune{0x2278}},
	{Name: "&NotLessLess;", Codepoints: []rune{0x226A, 0x0338}},
	{Name: "&NotLessSlantEqual;", Codepoints: []rune{0x2A7D, 0x0338}},
	{Name: "&NotLessTilde;", Codepoints: []rune{0x2274}},
	{Name: "&NotNestedGreaterGreater;", Codepoints: []rune{0x2AA2, 0x0338}},
	{Name: "&NotNestedLessLess;", Codepoints: []rune{0x2AA1, 0x0338}},
	{Name: "&NotPrecedes;", Codepoints: []rune{0x2280}},
	{Name: "&NotPrecedesEqual;", Codepoints: []rune{0x2AAF, 0x0338}},
	{Name: "&NotPrecedesSlantEqual;", Codepoints: []rune{0x22E0}},
	{Name: "&NotReverseElement;", Codepoints: []rune{0x220C}},
	{Name: "&NotRightTriangle;", Codepoints: []rune{0x22EB}},
	{Name: "&NotRightTriangleBar;", Codepoints: []rune{0x29D0, 0x0338}},
	{Name: "&NotRightTriangleEqual;", Codepoints: []rune{0x22ED}},
	{Name: "&NotSquareSubset;", Codepoints: []rune{0x228F, 0x0338}},
	{Name: "&NotSquareSubsetEqual;", Codepoints: []rune{0x22E2}},
	{Name: "&NotSquareSuperset;", Codepoints: []rune{0x2290, 0x0338}},
	{Name: "&NotSquareSupersetEqual;", Codepoints: []rune{0x22E3}},
	{Name: "&NotSubset;", Codepoints: []rune{0x2282, 0x20D2}},
	{Name: "&NotSubsetEqual;", Codepoints: []rune{0x2288}},
	{Name: "&NotSucceeds;", Codepoints: []rune{0x2281}},
	{Name: "&NotSucceedsEqual;", Codepoints: []rune{0x2AB0, 0x0338}},
	{Name: "&NotSucceedsSlantEqual;", Codepoints: []rune{0x22E1}},
	{Name: "&NotSucceedsTilde;", Codepoints: []rune{0x227F, 0x0338}},
	{Name: "&NotSuperset;", Codepoints: []rune{0x2283, 0x20D2}},
	{Name: "&NotSupersetEqual;", Codepoints: []rune{0x2289}},
	{Name: "&NotTilde;", Codepoints: []rune{0x2241}},
	{Name: "&NotTildeEqual;", Codepoints: []rune{0x2244}},
	{Name: "&NotTildeFullEqual;", Codepoints: []rune{0x2247}},
	{Name: "&NotTildeTilde;", Codepoints: []rune{0x2249}},
	{Name: "&NotVerticalBar;", Codepoints: []rune{0x2224}},
	{Name: "&Nscr;", Codepoints: []rune{0x1D4A9}},
	{Name: "&Ntilde", Codepoints: []rune{0x00D1}},
	{Name: "&Ntilde;", Codepoints: []rune{0x00D1}},
	{Name: "&Nu;", Codepoints: []rune{0x039D}},
	{Name: "&OElig;", Codepoints: []rune{0x0152}},
	{Name: "&Oacute", Codepoints: []rune{0x00D3}},
	{Name: "&Oacute;", Codepoints: []rune{0x00D3}},
	{Name: "&Ocirc", Codepoints: []rune{0x00D4}},
	{Name: "&Ocirc;", Codepoints: []rune{0x00D4}},
	{Name: "&Ocy;", Codepoints: []rune{0x041E}},
	{Name: "&Odblac;", Codepoints: []rune{0x0150}},
	{Name: "&Ofr;", Codepoints: []rune{0x1D512}},
	{Name: "&Ograve", Codepoints: []rune{0x00D2}},
	{Name: "&Ograve;", Codepoints: []rune{0x00D2}},
	{Name: "&Omacr;", Codepoints: []rune{0x014C}},
	{Name: "&Omega;", Codepoints: []rune{0x03A9}},
	{Name: "&Omicron;", Codepoints: []rune{0x039F}},
	{Name: "&Oopf;", Codepoints: []rune{0x1D546}},
	{Name: "&OpenCurlyDoubleQuote;", Codepoints: []rune{0x201C}},
	{Name: "&OpenCurlyQuote;", Codepoints: []rune{0x2018}},
	{Name: "&Or;", Codepoints: []rune{0x2A54}},
	{Name: "&Oscr;", Codepoints: []rune{0x1D4AA}},
	{Name: "&Oslash", Codepoints: []rune{0x00D8}},
	{Name: "&Oslash;", Codepoints: []rune{0x00D8}},
	{Name: "&Otilde", Codepoints: []rune{0x00D5}},
	{Name: "&Otilde;", Codepoints: []rune{0x00D5}},
	{Name: "&Otimes;", Codepoints: []rune{0x2A37}},
	{Name: "&Ouml", Codepoints: []rune{0x00D6}},
	{Name: "&Ouml;", Codepoints: []rune{0x00D6}},
	{Name: "&OverBar;", Codepoints: []rune{0x203E}},
	{Name: "&OverBrace;", Codepoints: []rune{0x23DE}},
	{Name: "&OverBracket;", Codepoints: []rune{0x23B4}},
	{Name: "&OverParenthesis;", Codepoints: []rune{0x23DC}},
	{Name: "&PartialD;", Codepoints: []rune{0x2202}},
	{Name: "&Pcy;", Codepoints: []rune{0x041F}},
	{Name: "&Pfr;", Codepoints: []rune{0x1D513}},
	{Name: "&Phi;", Codepoints: []rune{0x03A6}},
	{Name: "&Pi;", Codepoints: []rune{0x03A0}},
	{Name: "&PlusMinus;", Codepoints: []rune{0x00B1}},
	{Name: "&Poincareplane;", Codepoints: []rune{0x210C}},
	{Name: "&Popf;", Codepoints: []rune{0x2119}},
	{Name: "&Pr;", Codepoints: []rune{0x2ABB}},
	{Name: "&Precedes;", Codepoints: []rune{0x227A}},
	{Name: "&PrecedesEqual;", Codepoints: []rune{0x2AAF}},
	{Name: "&PrecedesSlantEqual;", Codepoints: []rune{0x227C}},
	{Name: "&PrecedesTilde;", Codepoints: []rune{0x227E}},
	{Name: "&Prime;", Codepoints: []rune{0x2033}},
	{Name: "&Product;", Codepoints: []rune{0x220F}},
	{Name: "&Proportion;", Codepoints: []rune{0x2237}},
	{Name: "&Proportional;", Codepoints: []rune{0x221D}},
	{Name: "&Pscr;", Codepoints: []rune{0x1D4AB}},
	{Name: "&Psi;", Codepoints: []rune{0x03A8}},
	{Name: "&QUOT", Codepoints: []rune{0x0022}},
	{Name: "&QUOT;", Codepoints: []rune{0x0022}},
	{Name: "&Qfr;", Codepoints: []rune{0x1D514}},
	{Name: "&Qopf;", Codepoints: []rune{0x211A}},
	{Name: "&Qscr;", Codepoints: []rune{0x1D4AC}},
	{Name: "&RBarr;", Codepoints: []rune{0x2910}},
	{Name: "&REG", Codepoints: []rune{0x00AE}},
	{Name: "&REG;", Codepoints: []rune{0x00AE}},
	{Name: "&Racute;", Codepoints: []rune{0x0154}},
	{Name: "&Rang;", Codepoints: []rune{0x27EB}},
	{Name: "&Rarr;", Codepoints: []rune{0x21A0}},
	{Name: "&Rarrtl;", Codepoints: []rune{0x2916}},
	{Name: "&Rcaron;", Codepoints: []rune{0x0158}},
	{Name: "&Rcedil;", Codepoints: []rune{0x0156}},
	{Name: "&Rcy;", Codepoints: []rune{0x0420}},
	{Name: "&Re;", Codepoints: []rune{0x211C}},
	{Name: "&ReverseElement;", Codepoints: []rune{0x220B}},
	{Name: "&ReverseEquilibrium;", Codepoints: []rune{0x21CB}},
	{Name: "&ReverseUpEquilibrium;", Codepoints: []rune{0x296F}},
	{Name: "&Rfr;", Codepoints: []rune{0x211C}},
	{Name: "&Rho;", Codepoints: []rune{0x03A1}},
	{Name: "&RightAngleBracket;", Codepoints: []rune{0x27E9}},
	{Name: "&RightArrow;", Codepoints: []rune{0x2192}},
	{Name: "&RightArrowBar;", Codepoints: []rune{0x21E5}},
	{Name: "&RightArrowLeftArrow;", Codepoints: []rune{0x21C4}},
	{Name: "&RightCeiling;", Codepoints: []rune{0x2309}},
	{Name: "&RightDoubleBracket;", Codepoints: []rune{0x27E7}},
	{Name: "&RightDownTeeVector;", Codepoints: []rune{0x295D}},
	{Name: "&RightDownVector;", Codepoints: []rune{0x21C2}},
	{Name: "&RightDownVectorBar;", Codepoints: []rune{0x2955}},
	{Name: "&RightFloor;", Codepoints: []rune{0x230B}},
	{Name: "&RightTee;", Codepoints: []rune{0x22A2}},
	{Name: "&RightTeeArrow;", Codepoints: []rune{0x21A6}},
	{Name: "&RightTeeVector;", Codepoints: []rune{0x295B}},
	{Name: "&RightTriangle;", Codepoints: []rune{0x22B3}},
	{Name: "&RightTriangleBar;", Codepoints: []rune{0x29D0}},
	{Name: "&RightTriangleEqual;", Codepoints: []rune{0x22B5}},
	{Name: "&RightUpDownVector;", Codepoints: []rune{0x294F}},
	{Name: "&RightUpTeeVector;", Codepoints: []rune{0x295C}},
	{Name: "&RightUpVector;", Codepoints: []rune{0x21BE}},
	{Name: "&RightUpVectorBar;", Codepoints: []rune{0x2954}},
	{Name: "&RightVector;", Codepoints: []rune{0x21C0}},
	{Name: "&RightVectorBar;", Codepoints: []rune{0x2953}},
	{Name: "&Rightarrow;", Codepoints: []rune{0x21D2}},
	{Name: "&Ropf;", Codepoints: []rune{0x211D}},
	{Name: "&RoundImplies;", Codepoints: []rune{0x2970}},
	{Name: "&Rrightarrow;", Codepoints: []rune{0x21DB}},
	{Name: "&Rscr;", Codepoints: []rune{0x211B}},
	{Name: "&Rsh;", Codepoints: []rune{0x21B1}},
	{Name: "&RuleDelayed;", Codepoints: []rune{0x29F4}},
	{Name: "&SHCHcy;", Codepoints: []rune{0x0429}},
	{Name: "&SHcy;", Codepoints: []rune{0x0428}},
	{Name: "&SOFTcy;", Codepoints: []rune{0x042C}},
	{Name: "&Sacute;", Codepoints: []rune{0x015A}},
	{Name: "&Sc;", Codepoints: []rune{0x2ABC}},
	{Name: "&Scaron;", Codepoints: []rune{0x0160}},
	{Name: "&Scedil;", Codepoints: []rune{0x015E}},
	{Name: "&Scirc;", Codepoints: []rune{0x015C}},
	{Name: "&Scy;", Codepoints: []rune{0x0421}},
	{Name: "&Sfr;", Codepoints: []rune{0x1D516}},
	{Name: "&ShortDownArrow;", Codepoints: []rune{0x2193}},
	{Name: "&ShortLeftArrow;", Codepoints: []rune{0x2190}},
	{Name: "&ShortRightArrow;", Codepoints: []rune{0x2192}},
	{Name: "&ShortUpArrow;", Codepoints: []rune{0x2191}},
	{Name: "&Sigma;", Codepoints: []rune{0x03A3}},
	{Name: "&SmallCircle;", Codepoints: []rune{0x2218}},
	{Name: "&Sopf;", Codepoints: []rune{0x1D54A}},
	{Name: "&Sqrt;", Codepoints: []rune{0x221A}},
	{Name: "&Square;", Codepoints: []rune{0x25A1}},
	{Name: "&SquareIntersection;", Codepoints: []rune{0x2293}},
	{Name: "&SquareSubset;", Codepoints: []rune{0x228F}},
	{Name: "&SquareSubsetEqual;", Codepoints: []rune{0x2291}},
	{Name: "&SquareSuperset;", Codepoints: []rune{0x2290}},
	{Name: "&SquareSupersetEqual;", Codepoints: []rune{0x2292}},
	{Name: "&SquareUnion;", Codepoints: []rune{0x2294}},
	{Name: "&Sscr;", Codepoints: []rune{0x1D4AE}},
	{Name: "&Star;", Codepoints: []rune{0x22C6}},
	{Name: "&Sub;", Codepoints: []rune{0x22D0}},
	{Name: "&Subset;", Codepoints: []rune{0x22D0}},
	{Name: "&SubsetEqual;", Codepoints: []rune{0x2286}},
	{Name: "&Succeeds;", Codepoints: []rune{0x227B}},
	{Name: "&SucceedsEqual;", Codepoints: []rune{0x2AB0}},
	{Name: "&SucceedsSlantEqual;", Codepoints: []rune{0x227D}},
	{Name: "&SucceedsTilde;", Codepoints: []rune{0x227F}},
	{Name: "&SuchThat;", Codepoints: []rune{0x220B}},
	{Name: "&Sum;", Codepoints: []rune{0x2211}},
	{Name: "&Sup;", Codepoints: []rune{0x22D1}},
	{Name: "&Superset;", Codepoints: []rune{0x2283}},
	{Name: "&SupersetEqual;", Codepoints: []rune{0x2287}},
	{Name: "&Supset;", Codepoints: []rune{0x22D1}},
	{Name: "&THORN", Codepoints: []rune{0x00DE}},
	{Name: "&THORN;", Codepoints: []rune{0x00DE}},
	{Name: "&TRADE;", Codepoints: []rune{0x2122}},
	{Name: "&TSHcy;", Codepoints: []rune{0x040B}},
	{Name: "&TScy;", Codepoints: []rune{0x0426}},
	{Name: "&Tab;", Codepoints: []rune{0x0009}},
	{Name: "&Tau;", Codepoints: []rune{0x03A4}},
	{Name: "&Tcaron;", Codepoints: []rune{0x0164}},
	{Name: "&Tcedil;", Codepoints: []rune{0x0162}},
	{Name: "&Tcy;", Codepoints: []rune{0x0422}},
	{Name: "&Tfr;", Codepoints: []rune{0x1D517}},
	{Name: "&Therefore;", Codepoints: []rune{0x2234}},
	{Name: "&Theta;", Codepoints: []rune{0x0398}},
	{Name: "&ThickSpace;", Codepoints: []rune{0x205F, 0x200A}},
	{Name: "&ThinSpace;", Codepoints: []rune{0x2009}},
	{Name: "&Tilde;", Codepoints: []rune{0x223C}},
	{Name: "&TildeEqual;", Codepoints: []rune{0x2243}},
	{Name: "&TildeFullEqual;", Codepoints: []rune{0x2245}},
	{Name: "&TildeTilde;", Codepoints: []rune{0x2248}},
	{Name: "&Topf;", Codepoints: []rune{0x1D54B}},
	{Name: "&TripleDot;", Codepoints: []rune{0x20DB}},
	{Name: "&Tscr;", Codepoints: []rune{0x1D4AF}},
	{Name: "&Tstrok;", Codepoints: []rune{0x0166}},
	{Name: "&Uacute", Codepoints: []rune{0x00DA}},
	{Name: "&Uacute;", Codepoints: []rune{0x00DA}},
	{Name: "&Uarr;", Codepoints: []rune{0x219F}},
	{Name: "&Uarrocir;", Codepoints: []rune{0x2949}},
	{Name: "&Ubrcy;", Codepoints: []rune{0x040E}},
	{Name: "&Ubreve;", Codepoints: []rune{0x016C}},
	{Name: "&Ucirc", Codepoints: []rune{0x00DB}},
	{Name: "&Ucirc;", Codepoints: []rune{0x00DB}},
	{Name: "&Ucy;", Codepoints: []rune{0x0423}},
	{Name: "&Udblac;", Codepoints: []rune{0x0170}},
	{Name: "&Ufr;", Codepoints: []rune{0x1D518}},
	{Name: "&Ugrave", Codepoints: []rune{0x00D9}},
	{Name: "&Ugrave;", Codepoints: []rune{0x00D9}},
	{Name: "&Umacr;", Codepoints: []rune{0x016A}},
	{Name: "&UnderBar;", Codepoints: []rune{0x005F}},
	{Name: "&UnderBrace;", Codepoints: []rune{0x23DF}},
	{Name: "&UnderBracket;", Codepoints: []rune{0x23B5}},
	{Name: "&UnderParenthesis;", Codepoints: []rune{0x23DD}},
	{Name: "&Union;", Codepoints: []rune{0x22C3}},
	{Name: "&UnionPlus;", Codepoints: []rune{0x228E}},
	{Name: "&Uogon;", Codepoints: []rune{0x0172}},
	{Name: "&Uopf;", Codepoints: []rune{0x1D54C}},
	{Name: "&UpArrow;", Codepoints: []rune{0x2191}},
	{Name: "&UpArrowBar;", Codepoints: []rune{0x2912}},
	{Name: "&UpArrowDownArrow;", Codepoints: []rune{0x21C5}},
	{Name: "&UpDownArrow;", Codepoints: []rune{0x2195}},
	{Name: "&UpEquilibrium;", Codepoints: []rune{0x296E}},
	{Name: "&UpTee;", Codepoints: []rune{0x22A5}},
	{Name: "&UpTeeArrow;", Codepoints: []rune{0x21A5}},
	{Name: "&Uparrow;", Codepoints: []rune{0x21D1}},
	{Name: "&Updownarrow;", Codepoints: []rune{0x21D5}},
	{Name: "&UpperLeftArrow;", Codepoints: []rune{0x2196}},
	{Name: "&UpperRightArrow;", Codepoints: []rune{0x2197}},
	{Name: "&Upsi;", Codepoints: []rune{0x03D2}},
	{Name: "&Upsilon;", Codepoints: []rune{0x03A5}},
	{Name: "&Uring;", Codepoints: []rune{0x016E}},
	{Name: "&Uscr;", Codepoints: []rune{0x1D4B0}},
	{Name: "&Utilde;", Codepoints: []rune{0x0168}},
	{Name: "&Uuml", Codepoints: []rune{0x00DC}},
	{Name: "&Uuml;", Codepoints: []rune{0x00DC}},
	{Name: "&VDash;", Codepoints: []rune{0x22AB}},
	{Name: "&Vbar;", Codepoints: []rune{0x2AEB}},
	{Name: "&Vcy;", Codepoints: []rune{0x0412}},
	{Name: "&Vdash;", Codepoints: []rune{0x22A9}},
	{Name: "&Vdashl;", Codepoints: []rune{0x2AE6}},
	{Name: "&Vee;", Codepoints: []rune{0x22C1}},
	{Name: "&Verbar;", Codepoints: []rune{0x2016}},
	{Name: "&Vert;", Codepoints: []rune{0x2016}},
	{Name: "&VerticalBar;", Codepoints: []rune{0x2223}},
	{Name: "&VerticalLine;", Codepoints: []rune{0x007C}},
	{Name: "&VerticalSeparator;", Codepoints: []rune{0x2758}},
	{Name: "&VerticalTilde;", Codepoints: []rune{0x2240}},
	{Name: "&VeryThinSpace;", Codepoints: []rune{0x200A}},
	{Name: "&Vfr;", Codepoints: []rune{0x1D519}},
	{Name: "&Vopf;", Codepoints: []rune{0x1D54D}},
	{Name: "&Vscr;", Codepoints: []rune{0x1D4B1}},
	{Name: "&Vvdash;", Codepoints: []rune{0x22AA}},
	{Name: "&Wcirc;", Codepoints: []rune{0x0174}},
	{Name: "&Wedge;", Codepoints: []rune{0x22C0}},
	{Name: "&Wfr;", Codepoints: []rune{0x1D51A}},
	{Name: "&Wopf;", Codepoints: []rune{0x1D54E}},
	{Name: "&Wscr;", Codepoints: []rune{0x1D4B2}},
	{Name: "&Xfr;", Codepoints: []rune{0x1D51B}},
	{Name: "&Xi;", Codepoints: []rune{0x039E}},
	{Name: "&Xopf;", Codepoints: []rune{0x1D54F}},
	{Name: "&Xscr;", Codepoints: []rune{0x1D4B3}},
	{Name: "&YAcy;", Codepoints: []rune{0x042F}},
	{Name: "&YIcy;", Codepoints: []rune{0x0407}},
	{Name: "&YUcy;", Codepoints: []rune{0x042E}},
	{Name: "&Yacute", Codepoints: []rune{0x00DD}},
	{Name: "&Yacute;", Codepoints: []rune{0x00DD}},
	{Name: "&Ycirc;", Codepoints: []rune{0x0176}},
	{Name: "&Ycy;", Codepoints: []rune{0x042B}},
	{Name: "&Yfr;", Codepoints: []rune{0x1D51C}},
	{Name: "&Yopf;", Codepoints: []rune{0x1D550}},
	{Name: "&Yscr;", Codepoints: []rune{0x1D4B4}},
	{Name: "&Yuml;", Codepoints: []rune{0x0178}},
	{Name: "&ZHcy;", Codepoints: []rune{0x0416}},
	{Name: "&Zacute;", Codepoints: []rune{0x0179}},
	{Name: "&Zcaron;", Codepoints: []rune{0x017D}},
	{Name: "&Zcy;", Codepoints: []rune{0x0417}},
	{Name: "&Zdot;", Codepoints: []rune{0x017B}},
	{Name: "&ZeroWidthSpace;", Codepoints: []rune{0x200B}},
	{Name: "&Zeta;", Codepoints: []rune{0x0396}},
	{Name: "&Zfr;", Codepoints: []rune{0x2128}},
	{Name: "&Zopf;", Codepoints: []rune{0x2124}},
	{Name: "&Zscr;", Codepoints: []rune{0x1D4B5}},
	{Name: "&aacute", Codepoints: []rune{0x00E1}},
	{Name: "&aacute;", Codepoints: []rune{0x00E1}},
	{Name: "&abreve;", Codepoints: []rune{0x0103}},
	{Name: "&ac;", Codepoints: []rune{0x223E}},
	{Name: "&acE;", Codepoints: []rune{0x223E, 0x0333}},
	{Name: "&acd;", Codepoints: []rune{0x223F}},
	{Name: "&acirc", Codepoints: []rune{0x00E2}},
	{Name: "&acirc;", Codepoints: []rune{0x00E2}},
	{Name: "&acute", Codepoints: []rune{0x00B4}},
	{Name: "&acute;", Codepoints: []rune{0x00B4}},
	{Name: "&acy;", Codepoints: []rune{0x0430}},
	{Name: "&aelig", Codepoints: []rune{0x00E6}},
	{Name: "&aelig;", Codepoints: []rune{0x00E6}},
	{Name: "&af;", Codepoints: []rune{0x2061}},
	{Name: "&afr;", Codepoints: []rune{0x1D51E}},
	{Name: "&agrave", Codepoints: []rune{0x00E0}},
	{Name: "&agrave;", Codepoints: []rune{0x00E0}},
	{Name: "&alefsym;", Codepoints: []rune{0x2135}},
	{Name: "&aleph;", Codepoints: []rune{0x2135}},
	{Name: "&alpha;", Codepoints: []rune{0x03B1}},
	{Name: "&amacr;", Codepoints: []rune{0x0101}},
	{Name: "&amalg;", Codepoints: []rune{0x2A3F}},
	{Name: "&amp", Codepoints: []rune{0x0026}},
	{Name: "&amp;", Codepoints: []rune{0x0026}},
	{Name: "&and;", Codepoints: []rune{0x2227}},
	{Name: "&andand;", Codepoints: []rune{0x2A55}},
	{Name: "&andd;", Codepoints: []rune{0x2A5C}},
	{Name: "&andslope;", Codepoints: []rune{0x2A58}},
	{Name: "&andv;", Codepoints: []rune{0x2A5A}},
	{Name: "&ang;", Codepoints: []rune{0x2220}},
	{Name: "&ange;", Codepoints: []rune{0x29A4}},
	{Name: "&angle;", Codepoints: []rune{0x2220}},
	{Name: "&angmsd;", Codepoints: []rune{0x2221}},
	{Name: "&angmsdaa;", Codepoints: []rune{0x29A8}},
	{Name: "&angmsdab;", Codepoints: []rune{0x29A9}},
	{Name: "&angmsdac;", Codepoints: []rune{0x29AA}},
	{Name: "&angmsdad;", Codepoints: []rune{0x29AB}},
	{Name: "&angmsdae;", Codepoints: []rune{0x29AC}},
	{Name: "&angmsdaf;", Codepoints: []rune{0x29AD}},
	{Name: "&angmsdag;", Codepoints: []rune{0x29AE}},
	{Name: "&angmsdah;", Codepoints: []rune{0x29AF}},
	{Name: "&angrt;", Codepoints: []rune{0x221F}},
	{Name: "&angrtvb;", Codepoints: []rune{0x22BE}},
	{Name: "&angrtvbd;", Codepoints: []rune{0x299D}},
	{Name: "&angsph;", Codepoints: []rune{0x2222}},
	{Name: "&angst;", Codepoints: []rune{0x00C5}},
	{Name: "&angzarr;", Codepoints: []rune{0x237C}},
	{Name: "&aogon;", Codepoints: []rune{0x0105}},
	{Name: "&aopf;", Codepoints: []rune{0x1D552}},
	{Name: "&ap;", Codepoints: []rune{0x2248}},
	{Name: "&apE;", Codepoints: []rune{0x2A70}},
	{Name: "&apacir;", Codepoints: []rune{0x2A6F}},
	{Name: "&ape;", Codepoints: []rune{0x224A}},
	{Name: "&apid;", Codepoints: []rune{0x224B}},
	{Name: "&apos;", Codepoints: []rune{0x0027}},
	{Name: "&approx;", Codepoints: []rune{0x2248}},
	{Name: "&approxeq;", Codepoints: []rune{0x224A}},
	{Name: "&aring", Codepoints: []rune{0x00E5}},
	{Name: "&aring;", Codepoints: []rune{0x00E5}},
	{Name: "&ascr;", Codepoints: []rune{0x1D4B6}},
	{Name: "&ast;", Codepoints: []rune{0x002A}},
	{Name: "&asymp;", Codepoints: []rune{0x2248}},
	{Name: "&asympeq;", Codepoints: []rune{0x224D}},
	{Name: "&atilde", Codepoints: []rune{0x00E3}},
	{Name: "&atilde;", Codepoints: []rune{0x00E3}},
	{Name: "&auml", Codepoints: []rune{0x00E4}},
	{Name: "&auml;", Codepoints: []rune{0x00E4}},
	{Name: "&awconint;", Codepoints: []rune{0x2233}},
	{Name: "&awint;", Codepoints: []rune{0x2A11}},
	{Name: "&bNot;", Codepoints: []rune{0x2AED}},
	{Name: "&backcong;", Codepoints: []rune{0x224C}},
	{Name: "&backepsilon;", Codepoints: []rune{0x03F6}},
	{Name: "&backprime;", Codepoints: []rune{0x2035}},
	{Name: "&backsim;", Codepoints: []rune{0x223D}},
	{Name: "&backsimeq;", Codepoints: []rune{0x22CD}},
	{Name: "&barvee;", Codepoints: []rune{0x22BD}},
	{Name: "&barwed;", Codepoints: []rune{0x2305}},
	{Name: "&barwedge;", Codepoints: []rune{0x2305}},
	{Name: "&bbrk;", Codepoints: []rune{0x23B5}},
	{Name: "&bbrktbrk;", Codepoints: []rune{0x23B6}},
	{Name: "&bcong;", Codepoints: []rune{0x224C}},
	{Name: "&bcy;", Codepoints: []rune{0x0431}},
	{Name: "&bdquo;", Codepoints: []rune{0x201E}},
	{Name: "&becaus;", Codepoints: []rune{0x2235}},
	{Name: "&because;", Codepoints: []rune{0x2235}},
	{Name: "&bemptyv;", Codepoints: []rune{0x29B0}},
	{Name: "&bepsi;", Codepoints: []rune{0x03F6}},
	{Name: "&bernou;", Codepoints: []rune{0x212C}},
	{Name: "&beta;", Codepoints: []rune{0x03B2}},
	{Name: "&beth;", Codepoints: []rune{0x2136}},
	{Name: "&between;", Codepoints: []rune{0x226C}},
	{Name: "&bfr;", Codepoints: []rune{0x1D51F}},
	{Name: "&bigcap;", Codepoints: []rune{0x22C2}},
	{Name: "&bigcirc;", Codepoints: []rune{0x25EF}},
	{Name: "&bigcup;", Codepoints: []rune{0x22C3}},
	{Name: "&bigodot;", Codepoints: []rune{0x2A00}},
	{Name: "&bigoplus;", Codepoints: []rune{0x2A01}},
	{Name: "&bigotimes;", Codepoints: []rune{0x2A02}},
	{Name: "&bigsqcup;", Codepoints: []rune{0x2A06}},
	{Name: "&bigstar;", Codepoints: []rune{0x2605}},
	{Name: "&bigtriangledown;", Codepoints: []rune{0x25BD}},
	{Name: "&bigtriangleup;", Codepoints: []rune{0x25B3}},
	{Name: "&biguplus;", Codepoints: []rune{0x2A04}},
	{Name: "&bigvee;", Codepoints: []rune{0x22C1}},
	{Name: "&bigwedge;", Codepoints: []rune{0x22C0}},
	{Name: "&bkarow;", Codepoints: []rune{0x290D}},
	{Name: "&blacklozenge;", Codepoints: []rune{0x29EB}},
	{Name: "&blacksquare;", Codepoints: []rune{0x25AA}},
	{Name: "&blacktriangle;", Codepoints: []rune{0x25B4}},
	{Name: "&blacktriangledown;", Codepoints: []rune{0x25BE}},
	{Name: "&blacktriangleleft;", Codepoints: []rune{0x25C2}},
	{Name: "&blacktriangleright;", Codepoints: []rune{0x25B8}},
	{Name: "&blank;", Codepoints: []rune{0x2423}},
	{Name: "&blk12;", Codepoints: []rune{0x2592}},
	{Name: "&blk14;", Codepoints: []rune{0x2591}},
	{Name: "&blk34;", Codepoints: []rune{0x2593}},
	{Name: "&block;", Codepoints: []rune{0x2588}},
	{Name: "&bne;", Codepoints: []rune{0x003D, 0x20E5}},
	{Name: "&bnequiv;", Codepoints: []rune{0x2261, 0x20E5}},
	{Name: "&bnot;", Codepoints: []rune{0x2310}},
	{Name: "&bopf;", Codepoints: []rune{0x1D553}},
	{Name: "&bot;", Codepoints: []rune{0x22A5}},
	{Name: "&bottom;", Codepoints: []rune{0x22A5}},
	{Name: "&bowtie;", Codepoints: []rune{0x22C8}},
	{Name: "&boxDL;", Codepoints: []rune{0x2557}},
	{Name: "&boxDR;", Codepoints: []rune{0x2554}},
	{Name: "&boxDl;", Codepoints: []rune{0x2556}},
	{Name: "&boxDr;", Codepoints: []rune{0x2553}},
	{Name: "&boxH;", Codepoints: []rune{0x2550}},
	{Name: "&boxHD;", Codepoints: []rune{0x2566}},
	{Name: "&boxHU;", Codepoints: []rune{0x2569}},
	{Name: "&boxHd;", Codepoints: []rune{0x2564}},
	{Name: "&boxHu;", Codepoints: []rune{0x2567}},
	{Name: "&boxUL;", Codepoints: []rune{0x255D}},
	{Name: "&boxUR;", Codepoints: []rune{0x255A}},
	{Name: "&boxUl;", Codepoints: []rune{0x255C}},
	{Name: "&boxUr;", Codepoints: []rune{0x2559}},
	{Name: "&boxV;", Codepoints: []rune{0x2551}},
	{Name: "&boxVH;", Codepoints: []rune{0x256C}},
	{Name: "&boxVL;", Codepoints: []rune{0x2563}},
	{Name: "&boxVR;", Codepoints: []rune{0x2560}},
	{Name: "&boxVh;", Codepoints: []rune{0x256B}},
	{Name: "&boxVl;", Codepoints: []rune{0x2562}},
	{Name: "&boxVr;", Codepoints: []rune{0x255F}},
	{Name: "&boxbox;", Codepoints: []rune{0x29C9}},
	{Name: "&boxdL;", Codepoints: []rune{0x2555}},
	{Name: "&boxdR;", Codepoints: []rune{0x2552}},
	{Name: "&boxdl;", Codepoints: []rune{0x2510}},
	{Name: "&boxdr;", Codepoints: []rune{0x250C}},
	{Name: "&boxh;", Codepoints: []rune{0x2500}},
	{Name: "&boxhD;", Codepoints: []rune{0x2565}},
	{Name: "&boxhU;", Codepoints: []rune{0x2568}},
	{Name: "&boxhd;", Codepoints: []rune{0x252C}},
	{Name: "&boxhu;", Codepoints: []rune{0x2534}},
	{Name: "&boxminus;", Codepoints: []rune{0x229F}},
	{Name: "&boxplus;", Codepoints: []rune{0x229E}},
	{Name: "&boxtimes;", Codepoints: []rune{0x22A0}},
	{Name: "&boxuL;", Codepoints: []rune{0x255B}},
	{Name: "&boxuR;", Codepoints: []rune{0x2558}},
	{Name: "&boxul;", Codepoints: []rune{0x2518}},
	{Name: "&boxur;", Codepoints: []rune{0x2514}},
	{Name: "&boxv;", Codepoints: []rune{0x2502}},
	{Name: "&boxvH;", Codepoints: []rune{0x256A}},
	{Name: "&boxvL;", Codepoints: []rune{0x2561}},
	{Name: "&boxvR;", Codepoints: []rune{0x255E}},
	{Name: "&boxvh;", Codepoints: []rune{0x253C}},
	{Name: "&boxvl;", Codepoints: []rune{0x2524}},
	{Name: "&boxvr;", Codepoints: []rune{0x251C}},
	{Name: "&bprime;", Codepoints: []rune{0x2035}},
	{Name: "&breve;", Codepoints: []rune{0x02D8}},
	{Name: "&brvbar", Codepoints: []rune{0x00A6}},
	{Name: "&brvbar;", Codepoints: []rune{0x00A6}},
	{Name: "&bscr;", Codepoints: []rune{0x1D4B7}},
	{Name: "&bsemi;", Codepoints: []rune{0x204F}},
	{Name: "&bsim;", Codepoints: []rune{0x223D}},
	{Name: "&bsime;", Codepoints: []rune{0x22CD}},
	{Name: "&bsol;", Codepoints: []rune{0x005C}},
	{Name: "&bsolb;", Codepoints: []rune{0x29C5}},
	{Name: "&bsolhsub;", Codepoints: []rune{0x27C8}},
	{Name: "&bull;", Codepoints: []rune{0x2022}},
	{Name: "&bullet;", Codepoints: []rune{0x2022}},
	{Name: "&bump;", Codepoints: []rune{0x224E}},
	{Name: "&bumpE;", Codepoints: []rune{0x2AAE}},
	{Name: "&bumpe;", Codepoints: []rune{0x224F}},
	{Name: "&bumpeq;", Codepoints: []rune{0x224F}},
	{Name: "&cacute;", Codepoints: []rune{0x0107}},
	{Name: "&cap;", Codepoints: []rune{0x2229}},
	{Name: "&capand;", Codepoints: []rune{0x2A44}},
	{Name: "&capbrcup;", Codepoints: []rune{0x2A49}},
	{Name: "&capcap;", Codepoints: []rune{0x2A4B}},
	{Name: "&capcup;", Codepoints: []rune{0x2A47}},
	{Name: "&capdot;", Codepoints: []rune{0x2A40}},
	{Name: "&caps;", Codepoints: []rune{0x2229, 0xFE00}},
	{Name: "&caret;", Codepoints: []rune{0x2041}},
	{Name: "&caron;", Codepoints: []rune{0x02C7}},
	{Name: "&ccaps;", Codepoints: []rune{0x2A4D}},
	{Name: "&ccaron;", Codepoints: []rune{0x010D}},
	{Name: "&ccedil", Codepoints: []rune{0x00E7}},
	{Name: "&ccedil;", Codepoints: []rune{0x00E7}},
	{Name: "&ccirc;", Codepoints: []rune{0x0109}},
	{Name: "&ccups;", Codepoints: []rune{0x2A4C}},
	{Name: "&ccupssm;", Codepoints: []rune{0x2A50}},
	{Name: "&cdot;", Codepoints: []rune{0x010B}},
	{Name: "&cedil", Codepoints: []rune{0x00B8}},
	{Name: "&cedil;", Codepoints: []rune{0x00B8}},
	{Name: "&cemptyv;", Codepoints: []rune{0x29B2}},
	{Name: "&cent", Codepoints: []rune{0x00A2}},
	{Name: "&cent;", Codepoints: []rune{0x00A2}},
	{Name: "&centerdot;", Codepoints: []rune{0x00B7}},
	{Name: "&cfr;", Codepoints: []rune{0x1D520}},
	{Name: "&chcy;", Codepoints: []rune{0x0447}},
	{Name: "&check;", Codepoints: []rune{0x2713}},
	{Name: "&checkmark;", Codepoints: []rune{0x2713}},
	{Name: "&chi;", Codepoints: []rune{0x03C7}},
	{Name: "&cir;", Codepoints: []rune{0x25CB}},
	{Name: "&cirE;", Codepoints: []rune{0x29C3}},
	{Name: "&circ;", Codepoints: []rune{0x02C6}},
	{Name: "&circeq;", Codepoints: []rune{0x2257}},
	{Name: "&circlearrowleft;", Codepoints: []rune{0x21BA}},
	{Name: "&circlearrowright;", Codepoints: []rune{0x21BB}},
	{Name: "&circledR;", Codepoints: []rune{0x00AE}},
	{Name: "&circledS;", Codepoints: []rune{0x24C8}},
	{Name: "&circledast;", Codepoints: []rune{0x229B}},
	{Name: "&circledcirc;", Codepoints: []rune{0x229A}},
	{Name: "&circleddash;", Codepoints: []rune{0x229D}},
	{Name: "&cire;", Codepoints: []rune{0x2257}},
	{Name: "&cirfnint;", Codepoints: []rune{0x2A10}},
	{Name: "&cirmid;", Codepoints: []rune{0x2AEF}},
	{Name: "&cirscir;", Codepoints: []rune{0x29C2}},
	{Name: "&clubs;", Codepoints: []rune{0x2663}},
	{Name: "&clubsuit;", Codepoints: []rune{0x2663}},
	{Name: "&colon;", Codepoints: []rune{0x003A}},
	{Name: "&colone;", Codepoints: []rune{0x2254}},
	{Name: "&coloneq;", Codepoints: []rune{0x2254}},
	{Name: "&comma;", Codepoints: []rune{0x002C}},
	{Name: "&commat;", Codepoints: []rune{0x0040}},
	{Name: "&comp;", Codepoints: []rune{0x2201}},
	{Name: "&compfn;", Codepoints: []rune{0x2218}},
	{Name: "&complement;", Codepoints: []rune{0x2201}},
	{Name: "&complexes;", Codepoints: []rune{0x2102}},
	{Name: "&cong;", Codepoints: []rune{0x2245}},
	{Name: "&congdot;", Codepoints: []rune{0x2A6D}},
	{Name: "&conint;", Codepoints: []rune{0x222E}},
	{Name: "&copf;", Codepoints: []rune{0x1D554}},
	{Name: "&coprod;", Codepoints: []rune{0x2210}},
	{Name: "&copy", Codepoints: []rune{0x00A9}},
	{Name: "&copy;", Codepoints: []rune{0x00A9}},
	{Name: "&copysr;", Codepoints: []rune{0x2117}},
	{Name: "&crarr;", Codepoints: []rune{0x21B5}},
	{Name: "&cross;", Codepoints: []rune{0x2717}},
	{Name: "&cscr;", Codepoints: []rune{0x1D4B8}},
	{Name: "&csub;", Codepoints: []rune{0x2ACF}},
	{Name: "&csube;", Codepoints: []rune{0x2AD1}},
	{Name: "&csup;", Codepoints: []rune{0x2AD0}},
	{Name: "&csupe;", Codepoints: []rune{0x2AD2}},
	{Name: "&ctdot;", Codepoints: []rune{0x22EF}},
	{Name: "&cudarrl;", Codepoints: []rune{0x2938}},
	{Name: "&cudarrr;", Codepoints: []rune{0x2935}},
	{Name: "&cuepr;", Codepoints: []rune{0x22DE}},
	{Name: "&cuesc;", Codepoints: []rune{0x22DF}},
	{Name: "&cularr;", Codepoints: []rune{0x21B6}},
	{Name: "&cularrp;", Codepoints: []rune{0x293D}},
	{Name: "&cup;", Codepoints: []rune{0x222A}},
	{Name: "&cupbrcap;", Codepoints: []rune{0x2A48}},
	{Name: "&cupcap;", Codepoints: []rune{0x2A46}},
	{Name: "&cupcup;", Codepoints: []rune{0x2A4A}},
	{Name: "&cupdot;", Codepoints: []rune{0x228D}},
	{Name: "&cupor;", Codepoints: []rune{0x2A45}},
	{Name: "&cups;", Codepoints: []rune{0x222A, 0xFE00}},
	{Name: "&curarr;", Codepoints: []rune{0x21B7}},
	{Name: "&curarrm;", Codepoints: []rune{0x293C}},
	{Name: "&curlyeqprec;", Codepoints: []rune{0x22DE}},
	{Name: "&curlyeqsucc;", Codepoints: []rune{0x22DF}},
	{Name: "&curlyvee;", Codepoints: []rune{0x22CE}},
	{Name: "&curlywedge;", Codepoints: []rune{0x22CF}},
	{Name: "&curren", Codepoints: []rune{0x00A4}},
	{Name: "&curren;", Codepoints: []rune{0x00A4}},
	{Name: "&curvearrowleft;", Codepoints: []rune{0x21B6}},
	{Name: "&curvearrowright;", Codepoints: []rune{0x21B7}},
	{Name: "&cuvee;", Codepoints: []rune{0x22CE}},
	{Name: "&cuwed;", Codepoints: []rune{0x22CF}},
	{Name: "&cwconint;", Codepoints: []rune{0x2232}},
	{Name: "&cwint;", Codepoints: []rune{0x2231}},
	{Name: "&cylcty;", Codepoints: []rune{0x232D}},
	{Name: "&dArr;", Codepoints: []rune{0x21D3}},
	{Name: "&dHar;", Codepoints: []rune{0x2965}},
	{Name: "&dagger;", Codepoints: []rune{0x2020}},
	{Name: "&daleth;", Codepoints: []rune{0x2138}},
	{Name: "&darr;", Codepoints: []rune{0x2193}},
	{Name: "&dash;", Codepoints: []rune{0x2010}},
	{Name: "&dashv;", Codepoints: []rune{0x22A3}},
	{Name: "&dbkarow;", Codepoints: []rune{0x290F}},
	{Name: "&dblac;", Codepoints: []rune{0x02DD}},
	{Name: "&dcaron;", Codepoints: []rune{0x010F}},
	{Name: "&dcy;", Codepoints: []rune{0x0434}},
	{Name: "&dd;", Codepoints: []rune{0x2146}},
	{Name: "&ddagger;", Codepoints: []rune{0x2021}},
	{Name: "&ddarr;", Codepoints: []rune{0x21CA}},
	{Name: "&ddotseq;", Codepoints: []rune{0x2A77}},
	{Name: "&deg", Codepoints: []rune{0x00B0}},
	{Name: "&deg;", Codepoints: []rune{0x00B0}},
	{Name: "&delta;", Codepoints: []rune{0x03B4}},
	{Name: "&demptyv;", Codepoints: []rune{0x29B1}},
	{Name: "&dfisht;", Codepoints: []rune{0x297F}},
	{Name: "&dfr;", Codepoints: []rune{0x1D521}},
	{Name: "&dharl;", Codepoints: []rune{0x21C3}},
	{Name: "&dharr;", Codepoints: []rune{0x21C2}},
	{Name: "&diam;", Codepoints: []rune{0x22C4}},
	{Name: "&diamond;", Codepoints: []rune{0x22C4}},
	{Name: "&diamondsuit;", Codepoints: []rune{0x2666}},
	{Name: "&diams;", Codepoints: []rune{0x2666}},
	{Name: "&die;", Codepoints: []rune{0x00A8}},
	{Name: "&digamma;", Codepoints: []rune{0x03DD}},
	{Name: "&disin;", Codepoints: []rune{0x22F2}},
	{Name: "&div;", Codepoints: []rune{0x00F7}},
	{Name: "&divide", Codepoints: []rune{0x00F7}},
	{Name: "&divide;", Codepoints: []rune{0x00F7}},
	{Name: "&divideontimes;", Codepoints: []rune{0x22C7}},
	{Name: "&divonx;", Codepoints: []rune{0x22C7}},
	{Name: "&djcy;", Codepoints: []rune{0x0452}},
	{Name: "&dlcorn;", Codepoints: []rune{0x231E}},
	{Name: "&dlcrop;", Codepoints: []rune{0x230D}},
	{Name: "&dollar;", Codepoints: []rune{0x0024}},
	{Name: "&dopf;", Codepoints: []rune{0x1D555}},
	{Name: "&dot;", Codepoints: []rune{0x02D9}},
	{Name: "&doteq;", Codepoints: []rune{0x2250}},
	{Name: "&doteqdot;", Codepoints: []rune{0x2251}},
	{Name: "&dotminus;", Codepoints: []rune{0x2238}},
	{Name: "&dotplus;", Codepoints: []rune{0x2214}},
	{Name: "&dotsquare;", Codepoints: []rune{0x22A1}},
	{Name: "&doublebarwedge;", Codepoints: []rune{0x2306}},
	{Name: "&downarrow;", Codepoints: []rune{0x2193}},
	{Name: "&downdownarrows;", Codepoints: []rune{0x21CA}},
	{Name: "&downharpoonleft;", Codepoints: []rune{0x21C3}},
	{Name: "&downharpoonright;", Codepoints: []rune{0x21C2}},
	{Name: "&drbkarow;", Codepoints: []rune{0x2910}},
	{Name: "&drcorn;", Codepoints: []rune{0x231F}},
	{Name: "&drcrop;", Codepoints: []rune{0x230C}},
	{Name: "&dscr;", Codepoints: []rune{0x1D4B9}},
	{Name: "&dscy;", Codepoints: []rune{0x0455}},
	{Name: "&dsol;", Codepoints: []rune{0x29F6}},
	{Name: "&dstrok;", Codepoints: []rune{0x0111}},
	{Name: "&dtdot;", Codepoints: []rune{0x22F1}},
	{Name: "&dtri;", Codepoints: []rune{0x25BF}},
	{Name: "&dtrif;", Codepoints: []rune{0x25BE}},
	{Name: "&duarr;", Codepoints: []rune{0x21F5}},
	{Name: "&duhar;", Codepoints: []rune{0x296F}},
	{Name: "&dwangle;", Codepoints: []rune{0x29A6}},
	{Name: "&dzcy;", Codepoints: []rune{0x045F}},
	{Name: "&dzigrarr;", Codepoints: []rune{0x27FF}},
	{Name: "&eDDot;", Codepoints: []rune{0x2A77}},
	{Name: "&eDot;", Codepoints: []rune{0x2251}},
	{Name: "&eacute", Codepoints: []rune{0x00E9}},
	{Name: "&eacute;", Codepoints: []rune{0x00E9}},
	{Name: "&easter;", Codepoints: []rune{0x2A6E}},
	{Name: "&ecaron;", Codepoints: []rune{0x011B}},
	{Name: "&ecir;", Codepoints: []rune{0x2256}},
	{Name: "&ecirc", Codepoints: []rune{0x00EA}},
	{Name: "&ecirc;", Codepoints: []rune{0x00EA}},
	{Name: "&ecolon;", Codepoints: []rune{0x2255}},
	{Name: "&ecy;", Codepoints: []rune{0x044D}},
	{Name: "&edot;", Codepoints: []rune{0x0117}},
	{Name: "&ee;", Codepoints: []rune{0x2147}},
	{Name: "&efDot;", Codepoints: []rune{0x2252}},
	{Name: "&efr;", Codepoints: []rune{0x1D522}},
	{Name: "&eg;", Codepoints: []rune{0x2A9A}},
	{Name: "&egrave", Codepoints: []rune{0x00E8}},
	{Name: "&egrave;", Codepoints: []rune{0x00E8}},
	{Name: "&egs;", Codepoints: []rune{0x2A96}},
	{Name: "&egsdot;", Codepoints: []rune{0x2A98}},
	{Name: "&el;", Codepoints: []rune{0x2A99}},
	{Name: "&elinters;", Codepoints: []rune{0x23E7}},
	{Name: "&ell;", Codepoints: []rune{0x2113}},
	{Name: "&els;", Codepoints: []rune{0x2A95}},
	{Name: "&elsdot;", Codepoints: []rune{0x2A97}},
	{Name: "&emacr;", Codepoints: []rune{0x0113}},
	{Name: "&empty;", Codepoints: []rune{0x2205}},
	{Name: "&emptyset;", Codepoints: []rune{0x2205}},
	{Name: "&emptyv;", Codepoints: []rune{0x2205}},
	{Name: "&emsp13;", Codepoints: []rune{0x2004}},
	{Name: "&emsp14;", Codepoints: []rune{0x2005}},
	{Name: "&emsp;", Codepoints: []rune{0x2003}},
	{Name: "&eng;", Codepoints: []rune{0x014B}},
	{Name: "&ensp;", Codepoints: []rune{0x2002}},
	{Name: "&eogon;", Codepoints: []rune{0x0119}},
	{Name: "&eopf;", Codepoints: []rune{0x1D556}},
	{Name: "&epar;", Codepoints: []rune{0x22D5}},
	{Name: "&eparsl;", Codepoints: []rune{0x29E3}},
	{Name: "&eplus;", Codepoints: []rune{0x2A71}},
	{Name: "&epsi;", Codepoints: []rune{0x03B5}},
	{Name: "&epsilon;", Codepoints: []rune{0x03B5}},
	{Name: "&epsiv;", Codepoints: []rune{0x03F5}},
	{Name: "&eqcirc;", Codepoints: []rune{0x2256}},
	{Name: "&eqcolon;", Codepoints: []rune{0x2255}},
	{Name: "&eqsim;", Codepoints: []rune{0x2242}},
	{Name: "&eqslantgtr;", Codepoints: []rune{0x2A96}},
	{Name: "&eqslantless;", Codepoints: []rune{0x2A95}},
	{Name: "&equals;", Codepoints: []rune{0x003D}},
	{Name: "&equest;", Codepoints: []rune{0x225F}},
	{Name: "&equiv;", Codepoints: []rune{0x2261}},
	{Name: "&equivDD;", Codepoints: []rune{0x2A78}},
	{Name: "&eqvparsl;", Codepoints: []rune{0x29E5}},
	{Name: "&erDot;", Codepoints: []rune{0x2253}},
	{Name: "&erarr;", Codepoints: []rune{0x2971}},
	{Name: "&escr;", Codepoints: []rune{0x212F}},
	{Name: "&esdot;", Codepoints: []rune{0x2250}},
	{Name: "&esim;", Codepoints: []rune{0x2242}},
	{Name: "&eta;", Codepoints: []rune{0x03B7}},
	{Name: "&eth", Codepoints: []rune{0x00F0}},
	{Name: "&eth;", Codepoints: []rune{0x00F0}},
	{Name: "&euml", Codepoints: []rune{0x00EB}},
	{Name: "&euml;", Codepoints: []rune{0x00EB}},
	{Name: "&euro;", Codepoints: []rune{0x20AC}},
	{Name: "&excl;", Codepoints: []rune{0x0021}},
	{Name: "&exist;", Codepoints: []rune{0x2203}},
	{Name: "&expectation;", Codepoints: []rune{0x2130}},
	{Name: "&exponentiale;", Codepoints: []rune{0x2147}},
	{Name: "&fallingdotseq;", Codepoints: []rune{0x2252}},
	{Name: "&fcy;", Codepoints: []rune{0x0444}},
	{Name: "&female;", Codepoints: []rune{0x2640}},
	{Name: "&ffilig;", Codepoints: []rune{0xFB03}},
	{Name: "&fflig;", Codepoints: []rune{0xFB00}},
	{Name: "&ffllig;", Codepoints: []rune{0xFB04}},
	{Name: "&ffr;", Codepoints: []rune{0x1D523}},
	{Name: "&filig;", Codepoints: []rune{0xFB01}},
	{Name: "&fjlig;", Codepoints: []rune{0x0066, 0x006A}},
	{Name: "&flat;", Codepoints: []rune{0x266D}},
	{Name: "&fllig;", Codepoints: []rune{0xFB02}},
	{Name: "&fltns;", Codepoints: []rune{0x25B1}},
	{Name: "&fnof;", Codepoints: []rune{0x0192}},
	{Name: "&fopf;", Codepoints: []rune{0x1D557}},
	{Name: "&forall;", Codepoints: []rune{0x2200}},
	{Name: "&fork;", Codepoints: []rune{0x22D4}},
	{Name: "&forkv;", Codepoints: []rune{0x2AD9}},
	{Name: "&fpartint;", Codepoints: []rune{0x2A0D}},
	{Name: "&frac12", Codepoints: []rune{0x00BD}},
	{Name: "&frac12;", Codepoints: []rune{0x00BD}},
	{Name: "&frac13;", Codepoints: []rune{0x2153}},
	{Name: "&frac14", Codepoints: []rune{0x00BC}},
	{Name: "&frac14;", Codepoints: []rune{0x00BC}},
	{Name: "&frac15;", Codepoints: []rune{0x2155}},
	{Name: "&frac16;", Codepoints: []rune{0x2159}},
	{Name: "&frac18;", Codepoints: []rune{0x215B}},
	{Name: "&frac23;", Codepoints: []rune{0x2154}},
	{Name: "&frac25;", Codepoints: []rune{0x2156}},
	{Name: "&frac34", Codepoints: []rune{0x00BE}},
	{Name: "&frac34;", Codepoints: []rune{0x00BE}},
	{Name: "&frac35;", Codepoints: []rune{0x2157}},
	{Name: "&frac38;", Codepoints: []rune{0x215C}},
	{Name: "&frac45;", Codepoints: []rune{0x2158}},
	{Name: "&frac56;", Codepoints: []rune{0x215A}},
	{Name: "&frac58;", Codepoints: []rune{0x215D}},
	{Name: "&frac78;", Codepoints: []rune{0x215E}},
	{Name: "&frasl;", Codepoints: []rune{0x2044}},
	{Name: "&frown;", Codepoints: []rune{0x2322}},
	{Name: "&fscr;", Codepoints: []rune{0x1D4BB}},
	{Name: "&gE;", Codepoints: []rune{0x2267}},
	{Name: "&gEl;", Codepoints: []rune{0x2A8C}},
	{Name: "&gacute;", Codepoints: []rune{0x01F5}},
	{Name: "&gamma;", Codepoints: []rune{0x03B3}},
	{Name: "&gammad;", Codepoints: []rune{0x03DD}},
	{Name: "&gap;", Codepoints: []rune{0x2A86}},
	{Name: "&gbreve;", Codepoints: []rune{0x011F}},
	{Name: "&gcirc;", Codepoints: []rune{0x011D}},
	{Name: "&gcy;", Codepoints: []rune{0x0433}},
	{Name: "&gdot;", Codepoints: []rune{0x0121}},
	{Name: "&ge;", Codepoints: []rune{0x2265}},
	{Name: "&gel;", Codepoints: []rune{0x22DB}},
	{Name: "&geq;", Codepoints: []rune{0x2265}},
	{Name: "&geqq;", Codepoints: []rune{0x2267}},
	{Name: "&geqslant;", Codepoints: []rune{0x2A7E}},
	{Name: "&ges;", Codepoints: []rune{0x2A7E}},
	{Name: "&gescc;", Codepoints: []rune{0x2AA9}},
	{Name: "&gesdot;", Codepoints: []rune{0x2A80}},
	{Name: "&gesdoto;", Codepoints: []rune{0x2A82}},
	{Name: "&gesdotol;", Codepoints: []rune{0x2A84}},
	{Name: "&gesl;", Codepoints: []rune{0x22DB, 0xFE00}},
	{Name: "&gesles;", Codepoints: []rune{0x2A94}},
	{Name: "&gfr;", Codepoints: []rune{0x1D524}},
	{Name: "&gg;", Codepoints: []rune{0x226B}},
	{Name: "&ggg;", Codepoints: []rune{0x22D9}},
	{Name: "&gimel;", Codepoints: []rune{0x2137}},
	{Name: "&gjcy;", Codepoints: []rune{0x0453}},
	{Name: "&gl;", Codepoints: []rune{0x2277}},
	{Name: "&glE;", Codepoints: []rune{0x2A92}},
	{Name: "&gla;", Codepoints: []rune{0x2AA5}},
	{Name: "&glj;", Codepoints: []rune{0x2AA4}},
	{Name: "&gnE;", Codepoints: []rune{0x2269}},
	{Name: "&gnap;", Codepoints: []rune{0x2A8A}},
	{Name: "&gnapprox;", Codepoints: []rune{0x2A8A}},
	{Name: "&gne;", Codepoints: []rune{0x2A88}},
	{Name: "&gneq;", Codepoints: []rune{0x2A88}},
	{Name: "&gneqq;", Codepoints: []rune{0x2269}},
	{Name: "&gnsim;", Codepoints: []rune{0x22E7}},
	{Name: "&gopf;", Codepoints: []rune{0x1D558}},
	{Name: "&grave;", Codepoints: []rune{0x0060}},
	{Name: "&gscr;", Codepoints: []rune{0x210A}},
	{Name: "&gsim;", Codepoints: []rune{0x2273}},
	{Name: "&gsime;", Codepoints: []rune{0x2A8E}},
	{Name: "&gsiml;", Codepoints: []rune{0x2A90}},
	{Name: "&gt", Codepoints: []rune{0x003E}},
	{Name: "&gt;", Codepoints: []rune{0x003E}},
	{Name: "&gtcc;", Codepoints: []rune{0x2AA7}},
	{Name: "&gtcir;", Codepoints: []rune{0x2A7A}},
	{Name: "&gtdot;", Codepoints: []rune{0x22D7}},
	{Name: "&gtlPar;", Codepoints: []rune{0x2995}},
	{Name: "&gtquest;", Codepoints: []rune{0x2A7C}},
	{Name: "&gtrapprox;", Codepoints: []rune{0x2A86}},
	{Name: "&gtrarr;", Codepoints: []rune{0x2978}},
	{Name: "&gtrdot;", Codepoints: []rune{0x22D7}},
	{Name: "&gtreqless;", Codepoints: []rune{0x22DB}},
	{Name: "&gtreqqless;", Codepoints: []rune{0x2A8C}},
	{Name: "&gtrless;", Codepoints: []rune{0x2277}},
	{Name: "&gtrsim;", Codepoints: []rune{0x2273}},
	{Name: "&gvertneqq;", Codepoints: []rune{0x2269, 0xFE00}},
	{Name: "&gvnE;", Codepoints: []rune{0x2269, 0xFE00}},
	{Name: "&hArr;", Codepoints: []rune{0x21D4}},
	{Name: "&hairsp;", Codepoints: []rune{0x200A}},
	{Name: "&half;", Codepoints: []rune{0x00BD}},
	{Name: "&hamilt;", Codepoints: []rune{0x210B}},
	{Name: "&hardcy;", Codepoints: []rune{0x044A}},
	{Name: "&harr;", Codepoints: []rune{0x2194}},
	{Name: "&harrcir;", Codepoints: []rune{0x2948}},
	{Name: "&harrw;", Codepoints: []rune{0x21AD}},
	{Name: "&hbar;", Codepoints: []rune{0x210F}},
	{Name: "&hcirc;", Codepoints: []rune{0x0125}},
	{Name: "&hearts;", Codepoints: []rune{0x2665}},
	{Name: "&heartsuit;", Codepoints: []rune{0x2665}},
	{Name: "&hellip;", Codepoints: []rune{0x2026}},
	{Name: "&hercon;", Codepoints: []rune{0x22B9}},
	{Name: "&hfr;", Codepoints: []rune{0x1D525}},
	{Name: "&hksearow;", Codepoints: []rune{0x2925}},
	{Name: "&hkswarow;", Codepoints: []rune{0x2926}},
	{Name: "&hoarr;", Codepoints: []rune{0x21FF}},
	{Name: "&homtht;", Codepoints: []rune{0x223B}},
	{Name: "&hookleftarrow;", Codepoints: []rune{0x21A9}},
	{Name: "&hookrightarrow;", Codepoints: []rune{0x21AA}},
	{Name: "&hopf;", Codepoints: []rune{0x1D559}},
	{Name: "&horbar;", Codepoints: []rune{0x2015}},
	{Name: "&hscr;", Codepoints: []rune{0x1D4BD}},
	{Name: "&hslash;", Codepoints: []rune{0x210F}},
	{Name: "&hstrok;", Codepoints: []rune{0x0127}},
	{Name: "&hybull;", Codepoints: []rune{0x2043}},
	{Name: "&hyphen;", Codepoints: []rune{0x2010}},
	{Name: "&iacute", Codepoints: []rune{0x00ED}},
	{Name: "&iacute;", Codepoints: []rune{0x00ED}},
	{Name: "&ic;", Codepoints: []rune{0x2063}},
	{Name: "&icirc", Codepoints: []rune{0x00EE}},
	{Name: "&icirc;", Codepoints: []rune{0x00EE}},
	{Name: "&icy;", Codepoints: []rune{0x0438}},
	{Name: "&iecy;", Codepoints: []rune{0x0435}},
	{Name: "&iexcl", Codepoints: []rune{0x00A1}},
	{Name: "&iexcl;", Codepoints: []rune{0x00A1}},
	{Name: "&iff;", Codepoints: []rune{0x21D4}},
	{Name: "&ifr;", Codepoints: []rune{0x1D526}},
	{Name: "&igrave", Codepoints: []rune{0x00EC}},
	{Name: "&igrave;", Codepoints: []rune{0x00EC}},
	{Name: "&ii;", Codepoints: []rune{0x2148}},
	{Name: "&iiiint;", Codepoints: []rune{0x2A0C}},
	{Name: "&iiint;", Codepoints: []rune{0x222D}},
	{Name: "&iinfin;", Codepoints: []rune{0x29DC}},
	{Name: "&iiota;", Codepoints: []rune{0x2129}},
	{Name: "&ijlig;", Codepoints: []rune{0x0133}},
	{Name: "&imacr;", Codepoints: []rune{0x012B}},
	{Name: "&image;", Codepoints: []rune{0x2111}},
	{Name: "&imagline;", Codepoints: []rune{0x2110}},
	{Name: "&imagpart;", Codepoints: []rune{0x2111}},
	{Name: "&imath;", Codepoints: []rune{0x0131}},
	{Name: "&imof;", Codepoints: []rune{0x22B7}},
	{Name: "&imped;", Codepoints: []rune{0x01B5}},
	{Name: "&in;", Codepoints: []rune{0x2208}},
	{Name: "&incare;", Codepoints: []rune{0x2105}},
	{Name: "&infin;", Codepoints: []rune{0x221E}},
	{Name: "&infintie;", Codepoints: []rune{0x29DD}},
	{Name: "&inodot;", Codepoints: []rune{0x0131}},
	{Name: "&int;", Codepoints: []rune{0x222B}},
	{Name: "&intcal;", Codepoints: []rune{0x22BA}},
	{Name: "&integers;", Codepoints: []rune{0x2124}},
	{Name: "&intercal;", Codepoints: []rune{0x22BA}},
	{Name: "&intlarhk;", Codepoints: []rune{0x2A17}},
	{Name: "&intprod;", Codepoints: []rune{0x2A3C}},
	{Name: "&iocy;", Codepoints: []rune{0x0451}},
	{Name: "&iogon;", Codepoints: []rune{0x012F}},
	{Name: "&iopf;", Codepoints: []rune{0x1D55A}},
	{Name: "&iota;", Codepoints: []rune{0x03B9}},
	{Name: "&iprod;", Codepoints: []rune{0x2A3C}},
	{Name: "&iquest", Codepoints: []rune{0x00BF}},
	{Name: "&iquest;", Codepoints: []rune{0x00BF}},
	{Name: "&iscr;", Codepoints: []rune{0x1D4BE}},
	{Name: "&isin;", Codepoints: []rune{0x2208}},
	{Name: "&isinE;", Codepoints: []rune{0x22F9}},
	{Name: "&isindot;", Codepoints: []rune{0x22F5}},
	{Name: "&isins;", Codepoints: []rune{0x22F4}},
	{Name: "&isinsv;", Codepoints: []rune{0x22F3}},
	{Name: "&isinv;", Codepoints: []rune{0x2208}},
	{Name: "&it;", Codepoints: []rune{0x2062}},
	{Name: "&itilde;", Codepoints: []rune{0x0129}},
	{Name: "&iukcy;", Codepoints: []rune{0x0456}},
	{Name: "&iuml", Codepoints: []rune{0x00EF}},
	{Name: "&iuml;", Codepoints: []rune{0x00EF}},
	{Name: "&jcirc;", Codepoints: []rune{0x0135}},
	{Name: "&jcy;", Codepoints: []rune{0x0439}},
	{Name: "&jfr;", Codepoints: []rune{0x1D527}},
	{Name: "&jmath;", Codepoints: []rune{0x0237}},
	{Name: "&jopf;", Codepoints: []rune{0x1D55B}},
	{Name: "&jscr;", Codepoints: []rune{0x1D4BF}},
	{Name: "&jsercy;", Codepoints: []rune{0x0458}},
	{Name: "&jukcy;", Codepoints: []rune{0x0454}},
	{Name: "&kappa;", Codepoints: []rune{0x03BA}},
	{Name: "&kappav;", Codepoints: []rune{0x03F0}},
	{Name: "&kcedil;", Codepoints: []rune{0x0137}},
	{Name: "&kcy;", Codepoints: []rune{0x043A}},
	{Name: "&kfr;", Codepoints: []rune{0x1D528}},
	{Name: "&kgreen;", Codepoints: []rune{0x0138}},
	{Name: "&khcy;", Codepoints: []rune{0x0445}},
	{Name: "&kjcy;", Codepoints: []rune{0x045C}},
	{Name: "&kopf;", Codepoints: []rune{0x1D55C}},
	{Name: "&kscr;", Codepoints: []rune{0x1D4C0}},
	{Name: "&lAarr;", Codepoints: []rune{0x21DA}},
	{Name: "&lArr;", Codepoints: []rune{0x21D0}},
	{Name: "&lAtail;", Codepoints: []rune{0x291B}},
	{Name: "&lBarr;", Codepoints: []rune{0x290E}},
	{Name: "&lE;", Codepoints: []rune{0x2266}},
	{Name: "&lEg;", Codepoints: []rune{0x2A8B}},
	{Name: "&lHar;", Codepoints: []rune{0x2962}},
	{Name: "&lacute;", Codepoints: []rune{0x013A}},
	{Name: "&laemptyv;", Codepoints: []rune{0x29B4}},
	{Name: "&lagran;", Codepoints: []rune{0x2112}},
	{Name: "&lambda;", Codepoints: []rune{0x03BB}},
	{Name: "&lang;", Codepoints: []rune{0x27E8}},
	{Name: "&langd;", Codepoints: []rune{0x2991}},
	{Name: "&langle;", Codepoints: []rune{0x27E8}},
	{Name: "&lap;", Codepoints: []rune{0x2A85}},
	{Name: "&laquo", Codepoints: []rune{0x00AB}},
	{Name: "&laquo;", Codepoints: []rune{0x00AB}},
	{Name: "&larr;", Codepoints: []rune{0x2190}},
	{Name: "&larrb;", Codepoints: []rune{0x21E4}},
	{Name: "&larrbfs;", Codepoints: []rune{0x291F}},
	{Name: "&larrfs;", Codepoints: []rune{0x291D}},
	{Name: "&larrhk;", Codepoints: []rune{0x21A9}},
	{Name: "&larrlp;", Codepoints: []rune{0x21AB}},
	{Name: "&larrpl;", Codepoints: []rune{0x2939}},
	{Name: "&larrsim;", Codepoints: []rune{0x2973}},
	{Name: "&larrtl;", Codepoints: []rune{0x21A2}},
	{Name: "&lat;", Codepoints: []rune{0x2AAB}},
	{Name: "&latail;", Codepoints: []rune{0x2919}},
	{Name: "&late;", Codepoints: []rune{0x2AAD}},
	{Name: "&lates;", Codepoints: []rune{0x2AAD, 0xFE00}},
	{Name: "&lbarr;", Codepoints: []rune{0x290C}},
	{Name: "&lbbrk;", Codepoints: []rune{0x2772}},
	{Name: "&lbrace;", Codepoints: []rune{0x007B}},
	{Name: "&lbrack;", Codepoints: []rune{0x005B}},
	{Name: "&lbrke;", Codepoints: []rune{0x298B}},
	{Name: "&lbrksld;", Codepoints: []rune{0x298F}},
	{Name: "&lbrkslu;", Codepoints: []rune{0x298D}},
	{Name: "&lcaron;", Codepoints: []rune{0x013E}},
	{Name: "&lcedil;", Codepoints: []rune{0x013C}},
	{Name: "&lceil;", Codepoints: []rune{0x2308}},
	{Name: "&lcub;", Codepoints: []rune{0x007B}},
	{Name: "&lcy;", Codepoints: []rune{0x043B}},
	{Name: "&ldca;", Codepoints: []rune{0x2936}},
	{Name: "&ldquo;", Codepoints: []rune{0x201C}},
	{Name: "&ldquor;", Codepoints: []rune{0x201E}},
	{Name: "&ldrdhar;", Codepoints: []rune{0x2967}},
	{Name: "&ldrushar;", Codepoints: []rune{0x294B}},
	{Name: "&ldsh;", Codepoints: []rune{0x21B2}},
	{Name: "&le;", Codepoints: []rune{0x2264}},
	{Name: "&leftarrow;", Codepoints: []rune{0x2190}},
	{Name: "&leftarrowtail;", Codepoints: []rune{0x21A2}},
	{Name: "&leftharpoondown;", Codepoints: []rune{0x21BD}},
	{Name: "&leftharpoonup;", Codepoints: []rune{0x21BC}},
	{Name: "&leftleftarrows;", Codepoints: []rune{0x21C7}},
	{Name: "&leftrightarrow;", Codepoints: []rune{0x2194}},
	{Name: "&leftrightarrows;", Codepoints: []rune{0x21C6}},
	{Name: "&leftrightharpoons;", Codepoints: []rune{0x21CB}},
	{Name: "&leftrightsquigarrow;", Codepoints: []rune{0x21AD}},
	{Name: "&leftthreetimes;", Codepoints: []rune{0x22CB}},
	{Name: "&leg;", Codepoints: []rune{0x22DA}},
	{Name: "&leq;", Codepoints: []rune{0x2264}},
	{Name: "&leqq;", Codepoints: []rune{0x2266}},
	{Name: "&leqslant;", Codepoints: []rune{0x2A7D}},
	{Name: "&les;", Codepoints: []rune{0x2A7D}},
	{Name: "&lescc;", Codepoints: []rune{0x2AA8}},
	{Name: "&lesdot;", Codepoints: []rune{0x2A7F}},
	{Name: "&lesdoto;", Codepoints: []rune{0x2A81}},
	{Name: "&lesdotor;", Codepoints: []rune{0x2A83}},
	{Name: "&lesg;", Codepoints: []rune{0x22DA, 0xFE00}},
	{Name: "&lesges;", Codepoints: []rune{0x2A93}},
	{Name: "&lessapprox;", Codepoints: []rune{0x2A85}},
	{Name: "&lessdot;", Codepoints: []rune{0x22D6}},
	{Name: "&lesseqgtr;", Codepoints: []rune{0x22DA}},
	{Name: "&lesseqqgtr;", Codepoints: []rune{0x2A8B}},
	{Name: "&lessgtr;", Codepoints: []rune{0x2276}},
	{Name: "&lesssim;", Codepoints: []rune{0x2272}},
	{Name: "&lfisht;", Codepoints: []rune{0x297C}},
	{Name: "&lfloor;", Codepoints: []rune{0x230A}},
	{Name: "&lfr;", Codepoints: []rune{0x1D529}},
	{Name: "&lg;", Codepoints: []rune{0x2276}},
	{Name: "&lgE;", Codepoints: []rune{0x2A91}},
	{Name: "&lhard;", Codepoints: []rune{0x21BD}},
	{Name: "&lharu;", Codepoints: []rune{0x21BC}},
	{Name: "&lharul;", Codepoints: []rune{0x296A}},
	{Name: "&lhblk;", Codepoints: []rune{0x2584}},
	{Name: "&ljcy;", Codepoints: []rune{0x0459}},
	{Name: "&ll;", Codepoints: []rune{0x226A}},
	{Name: "&llarr;", Codepoints: []rune{0x21C7}},
	{Name: "&llcorner;", Codepoints: []rune{0x231E}},
	{Name: "&llhard;", Codepoints: []rune{0x296B}},
	{Name: "&lltri;", Codepoints: []rune{0x25FA}},
	{Name: "&lmidot;", Codepoints: []rune{0x0140}},
	{Name: "&lmoust;", Codepoints: []rune{0x23B0}},
	{Name: "&lmoustache;", Codepoints: []rune{0x23B0}},
	{Name: "&lnE;", Codepoints: []rune{0x2268}},
	{Name: "&lnap;", Codepoints: []rune{0x2A89}},
	{Name: "&lnapprox;", Codepoints: []rune{0x2A89}},
	{Name: "&lne;", Codepoints: []rune{0x2A87}},
	{Name: "&lneq;", Codepoints: []rune{0x2A87}},
	{Name: "&lneqq;", Codepoints: []rune{0x2268}},
	{Name: "&lnsim;", Codepoints: []rune{0x22E6}},
	{Name: "&loang;", Codepoints: []rune{0x27EC}},
	{Name: "&loarr;", Codepoints: []rune{0x21FD}},
	{Name: "&lobrk;", Codepoints: []rune{0x27E6}},
	{Name: "&longleftarrow;", Codepoints: []rune{0x27F5}},
	{Name: "&longleftrightarrow;", Codepoints: []rune{0x27F7}},
	{Name: "&longmapsto;", Codepoints: []rune{0x27FC}},
	{Name: "&longrightarrow;", Codepoints: []rune{0x27F6}},
	{Name: "&looparrowleft;", Codepoints: []rune{0x21AB}},
	{Name: "&looparrowright;", Codepoints: []rune{0x21AC}},
	{Name: "&lopar;", Codepoints: []rune{0x2985}},
	{Name: "&lopf;", Codepoints: []rune{0x1D55D}},
	{Name: "&loplus;", Codepoints: []rune{0x2A2D}},
	{Name: "&lotimes;", Codepoints: []rune{0x2A34}},
	{Name: "&lowast;", Codepoints: []rune{0x2217}},
	{Name: "&lowbar;", Codepoints: []rune{0x005F}},
	{Name: "&loz;", Codepoints: []rune{0x25CA}},
	{Name: "&lozenge;", Codepoints: []rune{0x25CA}},
	{Name: "&lozf;", Codepoints: []rune{0x29EB}},
	{Name: "&lpar;", Codepoints: []rune{0x0028}},
	{Name: "&lparlt;", Codepoints: []rune{0x2993}},
	{Name: "&lrarr;", Codepoints: []rune{0x21C6}},
	{Name: "&lrcorner;", Codepoints: []rune{0x231F}},
	{Name: "&lrhar;", Codepoints: []rune{0x21CB}},
	{Name: "&lrhard;", Codepoints: []rune{0x296D}},
	{Name: "&lrm;", Codepoints: []rune{0x200E}},
	{Name: "&lrtri;", Codepoints: []rune{0x22BF}},
	{Name: "&lsaquo;", Codepoints: []rune{0x2039}},
	{Name: "&lscr;", Codepoints: []rune{0x1D4C1}},
	{Name: "&lsh;", Codepoints: []rune{0x21B0}},
	{Name: "&lsim;", Codepoints: []rune{0x2272}},
	{Name: "&lsime;", Codepoints: []rune{0x2A8D}},
	{Name: "&lsimg;", Codepoints: []rune{0x2A8F}},
	{Name: "&lsqb;", Codepoints: []rune{0x005B}},
	{Name: "&lsquo;", Codepoints: []rune{0x2018}},
	{Name: "&lsquor;", Codepoints: []rune{0x201A}},
	{Name: "&lstrok;", Codepoints: []rune{0x0142}},
	{Name: "&lt", Codepoints: []rune{0x003C}},
	{Name: "&lt;", Codepoints: []rune{0x003C}},
	{Name: "&ltcc;", Codepoints: []rune{0x2AA6}},
	{Name: "&ltcir;", Codepoints: []rune{0x2A79}},
	{Name: "&ltdot;", Codepoints: []rune{0x22D6}},
	{Name: "&lthree;", Codepoints: []rune{0x22CB}},
	{Name: "&ltimes;", Codepoints: []rune{0x22C9}},
	{Name: "&ltlarr;", Codepoints: []rune{0x2976}},
	{Name: "&ltquest;", Codepoints: []rune{0x2A7B}},
	{Name: "&ltrPar;", Codepoints: []rune{0x2996}},
	{Name: "&ltri;", Codepoints: []rune{0x25C3}},
	{Name: "&ltrie;", Codepoints: []rune{0x22B4}},
	{Name: "&ltrif;", Codepoints: []rune{0x25C2}},
	{Name: "&lurdshar;", Codepoints: []rune{0x294A}},
	{Name: "&luruhar;", Codepoints: []rune{0x2966}},
	{Name: "&lvertneqq;", Codepoints: []rune{0x2268, 0xFE00}},
	{Name: "&lvnE;", Codepoints: []rune{0x2268, 0xFE00}},
	{Name: "&mDDot;", Codepoints: []rune{0x223A}},
	{Name: "&macr", Codepoints: []rune{0x00AF}},
	{Name: "&macr;", Codepoints: []rune{0x00AF}},
	{Name: "&male;", Codepoints: []rune{0x2642}},
	{Name: "&malt;", Codepoints: []rune{0x2720}},
	{Name: "&maltese;", Codepoints: []rune{0x2720}},
	{Name: "&map;", Codepoints: []rune{0x21A6}},
	{Name: "&mapsto;", Codepoints: []rune{0x21A6}},
	{Name: "&mapstodown;", Codepoints: []rune{0x21A7}},
	{Name: "&mapstoleft;", Codepoints: []rune{0x21A4}},
	{Name: "&mapstoup;", Codepoints: []rune{0x21A5}},
	{Name: "&marker;", Codepoints: []rune{0x25AE}},
	{Name: "&mcomma;", Codepoints: []rune{0x2A29}},
	{Name: "&mcy;", Codepoints: []rune{0x043C}},
	{Name: "&mdash;", Codepoints: []rune{0x2014}},
	{Name: "&measuredangle;", Codepoints: []rune{0x2221}},
	{Name: "&mfr;", Codepoints: []rune{0x1D52A}},
	{Name: "&mho;", Codepoints: []rune{0x2127}},
	{Name: "&micro", Codepoints: []rune{0x00B5}},
	{Name: "&micro;", Codepoints: []rune{0x00B5}},
	{Name: "&mid;", Codepoints: []rune{0x2223}},
	{Name: "&midast;", Codepoints: []rune{0x002A}},
	{Name: "&midcir;", Codepoints: []rune{0x2AF0}},
	{Name: "&middot", Codepoints: []rune{0x00B7}},
	{Name: "&middot;", Codepoints: []rune{0x00B7}},
	{Name: "&minus;", Codepoints: []rune{0x2212}},
	{Name: "&minusb;", Codepoints: []rune{0x229F}},
	{Name: "&minusd;", Codepoints: []rune{0x2238}},
	{Name: "&minusdu;", Codepoints: []rune{0x2A2A}},
	{Name: "&mlcp;", Codepoints: []rune{0x2ADB}},
	{Name: "&mldr;", Codepoints: []rune{0x2026}},
	{Name: "&mnplus;", Codepoints: []rune{0x2213}},
	{Name: "&models;", Codepoints: []rune{0x22A7}},
	{Name: "&mopf;", Codepoints: []rune{0x1D55E}},
	{Name: "&mp;", Codepoints: []rune{0x2213}},
	{Name: "&mscr;", Codepoints: []rune{0x1D4C2}},
	{Name: "&mstpos;", Codepoints: []rune{0x223E}},
	{Name: "&mu;", Codepoints: []rune{0x03BC}},
	{Name: "&multimap;", Codepoints: []rune{0x22B8}},
	{Name: "&mumap;", Codepoints: []rune{0x22B8}},
	{Name: "&nGg;", Codepoints: []rune{0x22D9, 0x0338}},
	{Name: "&nGt;", Codepoints: []rune{0x226B, 0x20D2}},
	{Name: "&nGtv;", Codepoints: []rune{0x226B, 0x0338}},
	{Name: "&nLeftarrow;", Codepoints: []rune{0x21CD}},
	{Name: "&nLeftrightarrow;", Codepoints: []rune{0x21CE}},
	{Name: "&nLl;", Codepoints: []rune{0x22D8, 0x0338}},
	{Name: "&nLt;", Codepoints: []rune{0x226A, 0x20D2}},
	{Name: "&nLtv;", Codepoints: []rune{0x226A, 0x0338}},
	{Name: "&nRightarrow;", Codepoints: []rune{0x21CF}},
	{Name: "&nVDash;", Codepoints: []rune{0x22AF}},
	{Name: "&nVdash;", Codepoints: []rune{0x22AE}},
	{Name: "&nabla;", Codepoints: []rune{0x2207}},
	{Name: "&nacute;", Codepoints: []rune{0x0144}},
	{Name: "&nang;", Codepoints: []rune{0x2220, 0x20D2}},
	{Name: "&nap;", Codepoints: []rune{0x2249}},
	{Name: "&napE;", Codepoints: []rune{0x2A70, 0x0338}},
	{Name: "&napid;", Codepoints: []rune{0x224B, 0x0338}},
	{Name: "&napos;", Codepoints: []rune{0x0149}},
	{Name: "&napprox;", Codepoints: []rune{0x2249}},
	{Name: "&natur;", Codepoints: []rune{0x266E}},
	{Name: "&natural;", Codepoints: []rune{0x266E}},
	{Name: "&naturals;", Codepoints: []rune{0x2115}},
	{Name: "&nbsp", Codepoints: []rune{0x00A0}},
	{Name: "&nbsp;", Codepoints: []rune{0x00A0}},
	{Name: "&nbump;", Codepoints: []rune{0x224E, 0x0338}},
	{Name: "&nbumpe;", Codepoints: []rune{0x224F, 0x0338}},
	{Name: "&ncap;", Codepoints: []rune{0x2A43}},
	{Name: "&ncaron;", Codepoints: []rune{0x0148}},
	{Name: "&ncedil;", Codepoints: []rune{0x0146}},
	{Name: "&ncong;", Codepoints: []rune{0x2247}},
	{Name: "&ncongdot;", Codepoints: []rune{0x2A6D, 0x0338}},
	{Name: "&ncup;", Codepoints: []rune{0x2A42}},
	{Name: "&ncy;", Codepoints: []rune{0x043D}},
	{Name: "&ndash;", Codepoints: []rune{0x2013}},
	{Name: "&ne;", Codepoints: []rune{0x2260}},
	{Name: "&neArr;", Codepoints: []rune{0x21D7}},
	{Name: "&nearhk;", Codepoints: []rune{0x2924}},
	{Name: "&nearr;", Codepoints: []rune{0x2197}},
	{Name: "&nearrow;", Codepoints: []rune{0x2197}},
	{Name: "&nedot;", Codepoints: []rune{0x2250, 0x0338}},
	{Name: "&nequiv;", Codepoints: []rune{0x2262}},
	{Name: "&nesear;", Codepoints: []rune{0x2928}},
	{Name: "&nesim;", Codepoints: []rune{0x2242, 0x0338}},
	{Name: "&nexist;", Codepoints: []rune{0x2204}},
	{Name: "&nexists;", Codepoints: []rune{0x2204}},
	{Name: "&nfr;", Codepoints: []rune{0x1D52B}},
	{Name: "&ngE;", Codepoints: []rune{0x2267, 0x0338}},
	{Name: "&nge;", Codepoints: []rune{0x2271}},
	{Name: "&ngeq;", Codepoints: []rune{0x2271}},
	{Name: "&ngeqq;", Codepoints: []rune{0x2267, 0x0338}},
	{Name: "&ngeqslant;", Codepoints: []rune{0x2A7E, 0x0338}},
	{Name: "&nges;", Codepoints: []rune{0x2A7E, 0x0338}},
	{Name: "&ngsim;", Codepoints: []rune{0x2275}},
	{Name: "&ngt;", Codepoints: []rune{0x226F}},
	{Name: "&ngtr;", Codepoints: []rune{0x226F}},
	{Name: "&nhArr;", Codepoints: []rune{0x21CE}},
	{Name: "&nharr;", Codepoints: []rune{0x21AE}},
	{Name: "&nhpar;", Codepoints: []rune{0x2AF2}},
	{Name: "&ni;", Codepoints: []rune{0x220B}},
	{Name: "&nis;", Codepoints: []rune{0x22FC}},
	{Name: "&nisd;", Codepoints: []rune{0x22FA}},
	{Name: "&niv;", Codepoints: []rune{0x220B}},
	{Name: "&njcy;", Codepoints: []rune{0x045A}},
	{Name: "&nlArr;", Codepoints: []rune{0x21CD}},
	{Name: "&nlE;", Codepoints: []rune{0x2266, 0x0338}},
	{Name: "&nlarr;", Codepoints: []rune{0x219A}},
	{Name: "&nldr;", Codepoints: []rune{0x2025}},
	{Name: "&nle;", Codepoints: []rune{0x2270}},
	{Name: "&nleftarrow;", Codepoints: []rune{0x219A}},
	{Name: "&nleftrightarrow;", Codepoints: []rune{0x21AE}},
	{Name: "&nleq;", Codepoints: []rune{0x2270}},
	{Name: "&nleqq;", Codepoints: []rune{0x2266, 0x0338}},
	{Name: "&nleqslant;", Codepoints: []rune{0x2A7D, 0x0338}},
	{Name: "&nles;", Codepoints: []rune{0x2A7D, 0x0338}},
	{Name: "&nless;", Codepoints: []rune{0x226E}},
	{Name: "&nlsim;", Codepoints: []rune{0x2274}},
	{Name: "&nlt;", Codepoints: []rune{0x226E}},
	{Name: "&nltri;", Codepoints: []rune{0x22EA}},
	{Name: "&nltrie;", Codepoints: []rune{0x22EC}},
	{Name: "&nmid;", Codepoints: []rune{0x2224}},
	{Name: "&nopf;", Codepoints: []rune{0x1D55F}},
	{Name: "&not", Codepoints: []rune{0x00AC}},
	{Name: "&not;", Codepoints: []rune{0x00AC}},
	{Name: "&notin;", Codepoints: []rune{0x2209}},
	{Name: "&notinE;", Codepoints: []rune{0x22F9, 0x0338}},
	{Name: "&notindot;", Codepoints: []rune{0x22F5, 0x0338}},
	{Name: "&notinva;", Codepoints: []rune{0x2209}},
	{Name: "&notinvb;", Codepoints: []rune{0x22F7}},
	{Name: "&notinvc;", Codepoints: []rune{0x22F6}},
	{Name: "&notni;", Codepoints: []rune{0x220C}},
	{Name: "&notniva;", Codepoints: []rune{0x220C}},
	{Name: "&notnivb;", Codepoints: []rune{0x22FE}},
	{Name: "&notnivc;", Codepoints: []rune{0x22FD}},
	{Name: "&npar;", Codepoints: []rune{0x2226}},
	{Name: "&nparallel;", Codepoints: []rune{0x2226}},
	{Name: "&nparsl;", Codepoints: []rune{0x2AFD, 0x20E5}},
	{Name: "&npart;", Codepoints: []rune{0x2202, 0x0338}},
	{Name: "&npolint;", Codepoints: []rune{0x2A14}},
	{Name: "&npr;", Codepoints: []rune{0x2280}},
	{Name: "&nprcue;", Codepoints: []rune{0x22E0}},
	{Name: "&npre;", Codepoints: []rune{0x2AAF, 0x0338}},
	{Name: "&nprec;", Codepoints: []rune{0x2280}},
	{Name: "&npreceq;", Codepoints: []rune{0x2AAF, 0x0338}},
	{Name: "&nrArr;", Codepoints: []rune{0x21CF}},
	{Name: "&nrarr;", Codepoints: []rune{0x219B}},
	{Name: "&nrarrc;", Codepoints: []rune{0x2933, 0x0338}},
	{Name: "&nrarrw;", Codepoints: []rune{0x219D, 0x0338}},
	{Name: "&nrightarrow;", Codepoints: []rune{0x219B}},
	{Name: "&nrtri;", Codepoints: []rune{0x22EB}},
	{Name: "&nrtrie;", Codepoints: []rune{0x22ED}},
	{Name: "&nsc;", Codepoints: []rune{0x2281}},
	{Name: "&nsccue;", Codepoints: []rune{0x22E1}},
	{Name: "&nsce;", Codepoints: []rune{0x2AB0, 0x0338}},
	{Name: "&nscr;", Codepoints: []rune{0x1D4C3}},
	{Name: "&nshortmid;", Codepoints: []rune{0x2224}},
	{Name: "&nshortparallel;", Codepoints: []rune{0x2226}},
	{Name: "&nsim;", Codepoints: []rune{0x2241}},
	{Name: "&nsime;", Codepoints: []rune{0x2244}},
	{Name: "&nsimeq;", Codepoints: []rune{0x2244}},
	{Name: "&nsmid;", Codepoints: []rune{0x2224}},
	{Name: "&nspar;", Codepoints: []rune{0x2226}},
	{Name: "&nsqsube;", Codepoints: []rune{0x22E2}},
	{Name: "&nsqsupe;", Codepoints: []rune{0x22E3}},
	{Name: "&nsub;", Codepoints: []rune{0x2284}},
	{Name: "&nsubE;", Codepoints: []rune{0x2AC5, 0x0338}},
	{Name: "&nsube;", Codepoints: []rune{0x2288}},
	{Name: "&nsubset;", Codepoints: []rune{0x2282, 0x20D2}},
	{Name: "&nsubseteq;", Codepoints: []rune{0x2288}},
	{Name: "&nsubseteqq;", Codepoints: []rune{0x2AC5, 0x0338}},
	{Name: "&nsucc;", Codepoints: []rune{0x2281}},
	{Name: "&nsucceq;", Codepoints: []rune{0x2AB0, 0x0338}},
	{Name: "&nsup;", Codepoints: []rune{0x2285}},
	{Name: "&nsupE;", Codepoints: []rune{0x2AC6, 0x0338}},
	{Name: "&nsupe;", Codepoints: []rune{0x2289}},
	{Name: "&nsupset;", Codepoints: []rune{0x2283, 0x20D2}},
	{Name: "&nsupseteq;", Codepoints: []rune{0x2289}},
	{Name: "&nsupseteqq;", Codepoints: []rune{0x2AC6, 0x0338}},
	{Name: "&ntgl;", Codepoints: []rune{0x2279}},
	{Name: "&ntilde", Codepoints: []rune{0x00F1}},
	{Name: "&ntilde;", Codepoints: []rune{0x00F1}},
	{Name: "&ntlg;", Codepoints: []rune{0x2278}},
	{Name: "&ntriangleleft;", Codepoints: []rune{0x22EA}},
	{Name: "&ntrianglelefteq;", Codepoints: []rune{0x22EC}},
	{Name: "&ntriangleright;", Codepoints: []rune{0x22EB}},
	{Name: "&ntrianglerighteq;", Codepoints: []rune{0x22ED}},
	{Name: "&nu;", Codepoints: []rune{0x03BD}},
	{Name: "&num;", Codepoints: []rune{0x0023}},
	{Name: "&numero;", Codepoints: []rune{0x2116}},
	{Name: "&numsp;", Codepoints: []rune{0x2007}},
	{Name: "&nvDash;", Codepoints: []rune{0x22AD}},
	{Name: "&nvHarr;", Codepoints: []rune{0x2904}},
	{Name: "&nvap;", Codepoints: []rune{0x224D, 0x20D2}},
	{Name: "&nvdash;", Codepoints: []rune{0x22AC}},
	{Name: "&nvge;", Codepoints: []rune{0x2265, 0x20D2}},
	{Name: "&nvgt;", Codepoints: []rune{0x003E, 0x20D2}},
	{Name: "&nvinfin;", Codepoints: []rune{0x29DE}},
	{Name: "&nvlArr;", Codepoints: []rune{0x2902}},
	{Name: "&nvle;", Codepoints: []rune{0x2264, 0x20D2}},
	{Name: "&nvlt;", Codepoints: []rune{0x003C, 0x20D2}},
	{Name: "&nvltrie;", Codepoints: []rune{0x22B4, 0x20D2}},
	{Name: "&nvrArr;", Codepoints: []rune{0x2903}},
	{Name: "&nvrtrie;", Codepoints: []rune{0x22B5, 0x20D2}},
	{Name: "&nvsim;", Codepoints: []rune{0x223C, 0x20D2}},
	{Name: "&nwArr;", Codepoints: []rune{0x21D6}},
	{Name: "&nwarhk;", Codepoints: []rune{0x2923}},
	{Name: "&nwarr;", Codepoints: []rune{0x2196}},
	{Name: "&nwarrow;", Codepoints: []rune{0x2196}},
	{Name: "&nwnear;", Codepoints: []rune{0x2927}},
	{Name: "&oS;", Codepoints: []rune{0x24C8}},
	{Name: "&oacute", Codepoints: []rune{0x00F3}},
	{Name: "&oacute;", Codepoints: []rune{0x00F3}},
	{Name: "&oast;", Codepoints: []rune{0x229B}},
	{Name: "&ocir;", Codepoints: []rune{0x229A}},
	{Name: "&ocirc", Codepoints: []rune{0x00F4}},
	{Name: "&ocirc;", Codepoints: []rune{0x00F4}},
	{Name: "&ocy;", Codepoints: []rune{0x043E}},
	{Name: "&odash;", Codepoints: []rune{0x229D}},
	{Name: "&odblac;", Codepoints: []rune{0x0151}},
	{Name: "&odiv;", Codepoints: []rune{0x2A38}},
	{Name: "&odot;", Codepoints: []rune{0x2299}},
	{Name: "&odsold;", Codepoints: []rune{0x29BC}},
	{Name: "&oelig;", Codepoints: []rune{0x0153}},
	{Name: "&ofcir;", Codepoints: []rune{0x29BF}},
	{Name: "&ofr;", Codepoints: []rune{0x1D52C}},
	{Name: "&ogon;", Codepoints: []rune{0x02DB}},
	{Name: "&ograve", Codepoints: []rune{0x00F2}},
	{Name: "&ograve;", Codepoints: []rune{0x00F2}},
	{Name: "&ogt;", Codepoints: []rune{0x29C1}},
	{Name: "&ohbar;", Codepoints: []rune{0x29B5}},
	{Name: "&ohm;", Codepoints: []rune{0x03A9}},
	{Name: "&oint;", Codepoints: []rune{0x222E}},
	{Name: "&olarr;", Codepoints: []rune{0x21BA}},
	{Name: "&olcir;", Codepoints: []rune{0x29BE}},
	{Name: "&olcross;", Codepoints: []rune{0x29BB}},
	{Name: "&oline;", Codepoints: []rune{0x203E}},
	{Name: "&olt;", Codepoints: []rune{0x29C0}},
	{Name: "&omacr;", Codepoints: []rune{0x014D}},
	{Name: "&omega;", Codepoints: []rune{0x03C9}},
	{Name: "&omicron;", Codepoints: []rune{0x03BF}},
	{Name: "&omid;", Codepoints: []rune{0x29B6}},
	{Name: "&ominus;", Codepoints: []rune{0x2296}},
	{Name: "&oopf;", Codepoints: []rune{0x1D560}},
	{Name: "&opar;", Codepoints: []rune{0x29B7}},
	{Name: "&operp;", Codepoints: []rune{0x29B9}},
	{Name: "&oplus;", Codepoints: []rune{0x2295}},
	{Name: "&or;", Codepoints: []rune{0x2228}},
	{Name: "&orarr;", Codepoints: []rune{0x21BB}},
	{Name: "&ord;", Codepoints: []rune{0x2A5D}},
	{Name: "&order;", Codepoints: []rune{0x2134}},
	{Name: "&orderof;", Codepoints: []rune{0x2134}},
	{Name: "&ordf", Codepoints: []rune{0x00AA}},
	{Name: "&ordf;", Codepoints: []rune{0x00AA}},
	{Name: "&ordm", Codepoints: []rune{0x00BA}},
	{Name: "&ordm;", Codepoints: []rune{0x00BA}},
	{Name: "&origof;", Codepoints: []rune{0x22B6}},
	{Name: "&oror;", Codepoints: []rune{0x2A56}},
	{Name: "&orslope;", Codepoints: []rune{0x2A57}},
	{Name: "&orv;", Codepoints: []rune{0x2A5B}},
	{Name: "&oscr;", Codepoints: []rune{0x2134}},
	{Name: "&oslash", Codepoints: []rune{0x00F8}},
	{Name: "&oslash;", Codepoints: []rune{0x00F8}},
	{Name: "&osol;", Codepoints: []rune{0x2298}},
	{Name: "&otilde", Codepoints: []rune{0x00F5}},
	{Name: "&otilde;", Codepoints: []rune{0x00F5}},
	{Name: "&otimes;", Codepoints: []rune{0x2297}},
	{Name: "&otimesas;", Codepoints: []rune{0x2A36}},
	{Name: "&ouml", Codepoints: []rune{0x00F6}},
	{Name: "&ouml;", Codepoints: []rune{0x00F6}},
	{Name: "&ovbar;", Codepoints: []rune{0x233D}},
	{Name: "&par;", Codepoints: []rune{0x2225}},
	{Name: "&para", Codepoints: []rune{0x00B6}},
	{Name: "&para;", Codepoints: []rune{0x00B6}},
	{Name: "&parallel;", Codepoints: []rune{0x2225}},
	{Name: "&parsim;", Codepoints: []rune{0x2AF3}},
	{Name: "&parsl;", Codepoints: []rune{0x2AFD}},
	{Name: "&part;", Codepoints: []rune{0x2202}},
	{Name: "&pcy;", Codepoints: []rune{0x043F}},
	{Name: "&percnt;", Codepoints: []rune{0x0025}},
	{Name: "&period;", Codepoints: []rune{0x002E}},
	{Name: "&permil;", Codepoints: []rune{0x2030}},
	{Name: "&perp;", Codepoints: []rune{0x22A5}},
	{Name: "&pertenk;", Codepoints: []rune{0x2031}},
	{Name: "&pfr;", Codepoints: []rune{0x1D52D}},
	{Name: "&phi;", Codepoints: []rune{0x03C6}},
	{Name: "&phiv;", Codepoints: []rune{0x03D5}},
	{Name: "&phmmat;", Codepoints: []rune{0x2133}},
	{Name: "&phone;", Codepoints: []rune{0x260E}},
	{Name: "&pi;", Codepoints: []rune{0x03C0}},
	{Name: "&pitchfork;", Codepoints: []rune{0x22D4}},
	{Name: "&piv;", Codepoints: []rune{0x03D6}},
	{Name: "&planck;", Codepoints: []rune{0x210F}},
	{Name: "&planckh;", Codepoints: []rune{0x210E}},
	{Name: "&plankv;", Codepoints: []rune{0x210F}},
	{Name: "&plus;", Codepoints: []rune{0x002B}},
	{Name: "&plusacir;", Codepoints: []rune{0x2A23}},
	{Name: "&plusb;", Codepoints: []rune{0x229E}},
	{Name: "&pluscir;", Codepoints: []rune{0x2A22}},
	{Name: "&plusdo;", Codepoints: []rune{0x2214}},
	{Name: "&plusdu;", Codepoints: []rune{0x2A25}},
	{Name: "&pluse;", Codepoints: []rune{0x2A72}},
	{Name: "&plusmn", Codepoints: []rune{0x00B1}},
	{Name: "&plusmn;", Codepoints: []rune{0x00B1}},
	{Name: "&plussim;", Codepoints: []rune{0x2A26}},
	{Name: "&plustwo;", Codepoints: []rune{0x2A27}},
	{Name: "&pm;", Codepoints: []rune{0x00B1}},
	{Name: "&pointint;", Codepoints: []rune{0x2A15}},
	{Name: "&popf;", Codepoints: []rune{0x1D561}},
	{Name: "&pound", Codepoints: []rune{0x00A3}},
	{Name: "&pound;", Codepoints: []rune{0x00A3}},
	{Name: "&pr;", Codepoints: []rune{0x227A}},
	{Name: "&prE;", Codepoints: []rune{0x2AB3}},
	{Name: "&prap;", Codepoints: []rune{0x2AB7}},
	{Name: "&prcue;", Codepoints: []rune{0x227C}},
	{Name: "&pre;", Codepoints: []rune{0x2AAF}},
	{Name: "&prec;", Codepoints: []rune{0x227A}},
	{Name: "&precapprox;", Codepoints: []rune{0x2AB7}},
	{Name: "&preccurlyeq;", Codepoints: []rune{0x227C}},
	{Name: "&preceq;", Codepoints: []rune{0x2AAF}},
	{Name: "&precnapprox;", Codepoints: []rune{0x2AB9}},
	{Name: "&precneqq;", Codepoints: []rune{0x2AB5}},
	{Name: "&precnsim;", Codepoints: []rune{0x22E8}},
	{Name: "&precsim;", Codepoints: []rune{0x227E}},
	{Name: "&prime;", Codepoints: []rune{0x2032}},
	{Name: "&primes;", Codepoints: []rune{0x2119}},
	{Name: "&prnE;", Codepoints: []rune{0x2AB5}},
	{Name: "&prnap;", Codepoints: []rune{0x2AB9}},
	{Name: "&prnsim;", Codepoints: []rune{0x22E8}},
	{Name: "&prod;", Codepoints: []rune{0x220F}},
	{Name: "&profalar;", Codepoints: []rune{0x232E}},
	{Name: "&profline;", Codepoints: []rune{0x2312}},
	{Name: "&profsurf;", Codepoints: []rune{0x2313}},
	{Name: "&prop;", Codepoints: []rune{0x221D}},
	{Name: "&propto;", Codepoints: []rune{0x221D}},
	{Name: "&prsim;", Codepoints: []rune{0x227E}},
	{Name: "&prurel;", Codepoints: []rune{0x22B0}},
	{Name: "&pscr;", Codepoints: []rune{0x1D4C5}},
	{Name: "&psi;", Codepoints: []rune{0x03C8}},
	{Name: "&puncsp;", Codepoints: []rune{0x2008}},
	{Name: "&qfr;", Codepoints: []rune{0x1D52E}},
	{Name: "&qint;", Codepoints: []rune{0x2A0C}},
	{Name: "&qopf;", Codepoints: []rune{0x1D562}},
	{Name: "&qprime;", Codepoints: []rune{0x2057}},
	{Name: "&qscr;", Codepoints: []rune{0x1D4C6}},
	{Name: "&quaternions;", Codepoints: []rune{0x210D}},
	{Name: "&quatint;", Codepoints: []rune{0x2A16}},
	{Name: "&quest;", Codepoints: []rune{0x003F}},
	{Name: "&questeq;", Codepoints: []rune{0x225F}},
	{Name: "&quot", Codepoints: []rune{0x0022}},
	{Name: "&quot;", Codepoints: []rune{0x0022}},
	{Name: "&rAarr;", Codepoints: []rune{0x21DB}},
	{Name: "&rArr;", Codepoints: []rune{0x21D2}},
	{Name: "&rAtail;", Codepoints: []rune{0x291C}},
	{Name: "&rBarr;", Codepoints: []rune{0x290F}},
	{Name: "&rHar;", Codepoints: []rune{0x2964}},
	{Name: "&race;", Codepoints: []rune{0x223D, 0x0331}},
	{Name: "&racute;", Codepoints: []rune{0x0155}},
	{Name: "&radic;", Codepoints: []rune{0x221A}},
	{Name: "&raemptyv;", Codepoints: []rune{0x29B3}},
	{Name: "&rang;", Codepoints: []rune{0x27E9}},
	{Name: "&rangd;", Codepoints: []rune{0x2992}},
	{Name: "&range;", Codepoints: []rune{0x29A5}},
	{Name: "&rangle;", Codepoints: []rune{0x27E9}},
	{Name: "&raquo", Codepoints: []rune{0x00BB}},
	{Name: "&raquo;", Codepoints: []rune{0x00BB}},
	{Name: "&rarr;", Codepoints: []rune{0x2192}},
	{Name: "&rarrap;", Codepoints: []rune{0x2975}},
	{Name: "&rarrb;", Codepoints: []rune{0x21E5}},
	{Name: "&rarrbfs;", Codepoints: []rune{0x2920}},
	{Name: "&rarrc;", Codepoints: []rune{0x2933}},
	{Name: "&rarrfs;", Codepoints: []rune{0x291E}},
	{Name: "&rarrhk;", Codepoints: []rune{0x21AA}},
	{Name: "&rarrlp;", Codepoints: []rune{0x21AC}},
	{Name: "&rarrpl;", Codepoints: []rune{0x2945}},
	{Name: "&rarrsim;", Codepoints: []rune{0x2974}},
	{Name: "&rarrtl;", Codepoints: []rune{0x21A3}},
	{Name: "&rarrw;", Codepoints: []rune{0x219D}},
	{Name: "&ratail;", Codepoints: []rune{0x291A}},
	{Name: "&ratio;", Codepoints: []rune{0x2236}},
	{Name: "&rationals;", Codepoints: []rune{0x211A}},
	{Name: "&rbarr;", Codepoints: []rune{0x290D}},
	{Name: "&rbbrk;", Codepoints: []rune{0x2773}},
	{Name: "&rbrace;", Codepoints: []rune{0x007D}},
	{Name: "&rbrack;", Codepoints: []rune{0x005D}},
	{Name: "&rbrke;", Codepoints: []rune{0x298C}},
	{Name: "&rbrksld;", Codepoints: []rune{0x298E}},
	{Name: "&rbrkslu;", Codepoints: []rune{0x2990}},
	{Name: "&rcaron;", Codepoints: []rune{0x0159}},
	{Name: "&rcedil;", Codepoints: []rune{0x0157}},
	{Name: "&rceil;", Codepoints: []rune{0x2309}},
	{Name: "&rcub;", Codepoints: []rune{0x007D}},
	{Name: "&rcy;", Codepoints: []rune{0x0440}},
	{Name: "&rdca;", Codepoints: []rune{0x2937}},
	{Name: "&rdldhar;", Codepoints: []rune{0x2969}},
	{Name: "&rdquo;", Codepoints: []rune{0x201D}},
	{Name: "&rdquor;", Codepoints: []rune{0x201D}},
	{Name: "&rdsh;", Codepoints: []rune{0x21B3}},
	{Name: "&real;", Codepoints: []rune{0x211C}},
	{Name: "&realine;", Codepoints: []rune{0x211B}},
	{Name: "&realpart;", Codepoints: []rune{0x211C}},
	{Name: "&reals;", Codepoints: []rune{0x211D}},
	{Name: "&rect;", Codepoints: []rune{0x25AD}},
	{Name: "&reg", Codepoints: []rune{0x00AE}},
	{Name: "&reg;", Codepoints: []rune{0x00AE}},
	{Name: "&rfisht;", Codepoints: []rune{0x297D}},
	{Name: "&rfloor;", Codepoints: []rune{0x230B}},
	{Name: "&rfr;", Codepoints: []rune{0x1D52F}},
	{Name: "&rhard;", Codepoints: []rune{0x21C1}},
	{Name: "&rharu;", Codepoints: []rune{0x21C0}},
	{Name: "&rharul;", Codepoints: []rune{0x296C}},
	{Name: "&rho;", Codepoints: []rune{0x03C1}},
	{Name: "&rhov;", Codepoints: []rune{0x03F1}},
	{Name: "&rightarrow;", Codepoints: []rune{0x2192}},
	{Name: "&rightarrowtail;", Codepoints: []rune{0x21A3}},
	{Name: "&rightharpoondown;", Codepoints: []rune{0x21C1}},
	{Name: "&rightharpoonup;", Codepoints: []rune{0x21C0}},
	{Name: "&rightleftarrows;", Codepoints: []rune{0x21C4}},
	{Name: "&rightleftharpoons;", Codepoints: []rune{0x21CC}},
	{Name: "&rightrightarrows;", Codepoints: []rune{0x21C9}},
	{Name: "&rightsquigarrow;", Codepoints: []rune{0x219D}},
	{Name: "&rightthreetimes;", Codepoints: []rune{0x22CC}},
	{Name: "&ring;", Codepoints: []rune{0x02DA}},
	{Name: "&risingdotseq;", Codepoints: []rune{0x2253}},
	{Name: "&rlarr;", Codepoints: []rune{0x21C4}},
	{Name: "&rlhar;", Codepoints: []rune{0x21CC}},
	{Name: "&rlm;", Codepoints: []rune{0x200F}},
	{Name: "&rmoust;", Codepoints: []rune{0x23B1}},
	{Name: "&rmoustache;", Codepoints: []rune{0x23B1}},
	{Name: "&rnmid;", Codepoints: []rune{0x2AEE}},
	{Name: "&roang;", Codepoints: []rune{0x27ED}},
	{Name: "&roarr;", Codepoints: []rune{0x21FE}},
	{Name: "&robrk;", Codepoints: []rune{0x27E7}},
	{Name: "&ropar;", Codepoints: []rune{0x2986}},
	{Name: "&ropf;", Codepoints: []rune{0x1D563}},
	{Name: "&roplus;", Codepoints: []rune{0x2A2E}},
	{Name: "&rotimes;", Codepoints: []rune{0x2A35}},
	{Name: "&rpar;", Codepoints: []rune{0x0029}},
	{Name: "&rpargt;", Codepoints: []rune{0x2994}},
	{Name: "&rppolint;", Codepoints: []rune{0x2A12}},
	{Name: "&rrarr;", Codepoints: []rune{0x21C9}},
	{Name: "&rsaquo;", Codepoints: []rune{0x203A}},
	{Name: "&rscr;", Codepoints: []rune{0x1D4C7}},
	{Name: "&rsh;", Codepoints: []rune{0x21B1}},
	{Name: "&rsqb;", Codepoints: []rune{0x005D}},
	{Name: "&rsquo;", Codepoints: []rune{0x2019}},
	{Name: "&rsquor;", Codepoints: []rune{0x2019}},
	{Name: "&rthree;", Codepoints: []rune{0x22CC}},
	{Name: "&rtimes;", Codepoints: []rune{0x22CA}},
	{Name: "&rtri;", Codepoints: []rune{0x25B9}},
	{Name: "&rtrie;", Codepoints: []rune{0x22B5}},
	{Name: "&rtrif;", Codepoints: []rune{0x25B8}},
	{Name: "&rtriltri;", Codepoints: []rune{0x29CE}},
	{Name: "&ruluhar;", Codepoints: []rune{0x2968}},
	{Name: "&rx;", Codepoints: []rune{0x211E}},
	{Name: "&sacute;", Codepoints: []rune{0x015B}},
	{Name: "&sbquo;", Codepoints: []rune{0x201A}},
	{Name: "&sc;", Codepoints: []rune{0x227B}},
	{Name: "&scE;", Codepoints: []rune{0x2AB4}},
	{Name: "&scap;", Codepoints: []rune{0x2AB8}},
	{Name: "&scaron;", Codepoints: []rune{0x0161}},
	{Name: "&sccue;", Codepoints: []rune{0x227D}},
	{Name: "&sce;", Codepoints: []rune{0x2AB0}},
	{Name: "&scedil;", Codepoints: []rune{0x015F}},
	{Name: "&scirc;", Codepoints: []rune{0x015D}},
	{Name: "&scnE;", Codepoints: []rune{0x2AB6}},
	{Name: "&scnap;", Codepoints: []rune{0x2ABA}},
	{Name: "&scnsim;", Codepoints: []rune{0x22E9}},
	{Name: "&scpolint;", Codepoints: []rune{0x2A13}},
	{Name: "&scsim;", Codepoints: []rune{0x227F}},
	{Name: "&scy;", Codepoints: []rune{0x0441}},
	{Name: "&sdot;", Codepoints: []rune{0x22C5}},
	{Name: "&sdotb;", Codepoints: []rune{0x22A1}},
	{Name: "&sdote;", Codepoints: []rune{0x2A66}},
	{Name: "&seArr;", Codepoints: []rune{0x21D8}},
	{Name: "&searhk;", Codepoints: []rune{0x2925}},
	{Name: "&searr;", Codepoints: []rune{0x2198}},
	{Name: "&searrow;", Codepoints: []rune{0x2198}},
	{Name: "&sect", Codepoints: []rune{0x00A7}},
	{Name: "&sect;", Codepoints: []rune{0x00A7}},
	{Name: "&semi;", Codepoints: []rune{0x003B}},
	{Name: "&seswar;", Codepoints: []rune{0x2929}},
	{Name: "&setminus;", Codepoints: []rune{0x2216}},
	{Name: "&setmn;", Codepoints: []rune{0x2216}},
	{Name: "&sext;", Codepoints: []rune{0x2736}},
	{Name: "&sfr;", Codepoints: []rune{0x1D530}},
	{Name: "&sfrown;", Codepoints: []rune{0x2322}},
	{Name: "&sharp;", Codepoints: []rune{0x266F}},
	{Name: "&shchcy;", Codepoints: []rune{0x0449}},
	{Name: "&shcy;", Codepoints: []rune{0x0448}},
	{Name: "&shortmid;", Codepoints: []rune{0x2223}},
	{Name: "&shortparallel;", Codepoints: []rune{0x2225}},
	{Name: "&shy", Codepoints: []rune{0x00AD}},
	{Name: "&shy;", Codepoints: []rune{0x00AD}},
	{Name: "&sigma;", Codepoints: []rune{0x03C3}},
	{Name: "&sigmaf;", Codepoints: []rune{0x03C2}},
	{Name: "&sigmav;", Codepoints: []rune{0x03C2}},
	{Name: "&sim;", Codepoints: []rune{0x223C}},
	{Name: "&simdot;", Codepoints: []rune{0x2A6A}},
	{Name: "&sime;", Codepoints: []rune{0x2243}},
	{Name: "&simeq;", Codepoints: []rune{0x2243}},
	{Name: "&simg;", Codepoints: []rune{0x2A9E}},
	{Name: "&simgE;", Codepoints: []rune{0x2AA0}},
	{Name: "&siml;", Codepoints: []rune{0x2A9D}},
	{Name: "&simlE;", Codepoints: []rune{0x2A9F}},
	{Name: "&simne;", Codepoints: []rune{0x2246}},
	{Name: "&simplus;", Codepoints: []rune{0x2A24}},
	{Name: "&simrarr;", Codepoints: []rune{0x2972}},
	{Name: "&slarr;", Codepoints: []rune{0x2190}},
	{Name: "&smallsetminus;", Codepoints: []rune{0x2216}},
	{Name: "&smashp;", Codepoints: []rune{0x2A33}},
	{Name: "&smeparsl;", Codepoints: []rune{0x29E4}},
	{Name: "&smid;", Codepoints: []rune{0x2223}},
	{Name: "&smile;", Codepoints: []rune{0x2323}},
	{Name: "&smt;", Codepoints: []rune{0x2AAA}},
	{Name: "&smte;", Codepoints: []rune{0x2AAC}},
	{Name: "&smtes;", Codepoints: []rune{0x2AAC, 0xFE00}},
	{Name: "&softcy;", Codepoints: []rune{0x044C}},
	{Name: "&sol;", Codepoints: []rune{0x002F}},
	{Name: "&solb;", Codepoints: []rune{0x29C4}},
	{Name: "&solbar;", Codepoints: []rune{0x233F}},
	{Name: "&sopf;", Codepoints: []rune{0x1D564}},
	{Name: "&spades;", Codepoints: []rune{0x2660}},
	{Name: "&spadesuit;", Codepoints: []rune{0x2660}},
	{Name: "&spar;", Codepoints: []rune{0x2225}},
	{Name: "&sqcap;", Codepoints: []rune{0x2293}},
	{Name: "&sqcaps;", Codepoints: []rune{0x2293, 0xFE00}},
	{Name: "&sqcup;", Codepoints: []rune{0x2294}},
	{Name: "&sqcups;", Codepoints: []rune{0x2294, 0xFE00}},
	{Name: "&sqsub;", Codepoints: []rune{0x228F}},
	{Name: "&sqsube;", Codepoints: []rune{0x2291}},
	{Name: "&sqsubset;", Codepoints: []rune{0x228F}},
	{Name: "&sqsubseteq;", Codepoints: []rune{0x2291}},
	{Name: "&sqsup;", Codepoints: []rune{0x2290}},
	{Name: "&sqsupe;", Codepoints: []rune{0x2292}},
	{Name: "&sqsupset;", Codepoints: []rune{0x2290}},
	{Name: "&sqsupseteq;", Codepoints: []rune{0x2292}},
	{Name: "&squ;", Codepoints: []rune{0x25A1}},
	{Name: "&square;", Codepoints: []rune{0x25A1}},
	{Name: "&squarf;", Codepoints: []rune{0x25AA}},
	{Name: "&squf;", Codepoints: []rune{0x25AA}},
	{Name: "&srarr;", Codepoints: []rune{0x2192}},
	{Name: "&sscr;", Codepoints: []rune{0x1D4C8}},
	{Name: "&ssetmn;", Codepoints: []rune{0x2216}},
	{Name: "&ssmile;", Codepoints: []rune{0x2323}},
	{Name: "&sstarf;", Codepoints: []rune{0x22C6}},
	{Name: "&star;", Codepoints: []rune{0x2606}},
	{Name: "&starf;", Codepoints: []rune{0x2605}},
	{Name: "&straightepsilon;", Codepoints: []rune{0x03F5}},
	{Name: "&straightphi;", Codepoints: []rune{0x03D5}},
	{Name: "&strns;", Codepoints: []rune{0x00AF}},
	{Name: "&sub;", Codepoints: []rune{0x2282}},
	{Name: "&subE;", Codepoints: []rune{0x2AC5}},
	{Name: "&subdot;", Codepoints: []rune{0x2ABD}},
	{Name: "&sube;", Codepoints: []rune{0x2286}},
	{Name: "&subedot;", Codepoints: []rune{0x2AC3}},
	{Name: "&submult;", Codepoints: []rune{0x2AC1}},
	{Name: "&subnE;", Codepoints: []rune{0x2ACB}},
	{Name: "&subne;", Codepoints: []rune{0x228A}},
	{Name: "&subplus;", Codepoints: []rune{0x2ABF}},
	{Name: "&subrarr;", Codepoints: []rune{0x2979}},
	{Name: "&subset;", Codepoints: []rune{0x2282}},
	{Name: "&subseteq;", Codepoints: []rune{0x2286}},
	{Name: "&subseteqq;", Codepoints: []rune{0x2AC5}},
	{Name: "&subsetneq;", Codepoints: []rune{0x228A}},
	{Name: "&subsetneqq;", Codepoints: []rune{0x2ACB}},
	{Name: "&subsim;", Codepoints: []rune{0x2AC7}},
	{Name: "&subsub;", Codepoints: []rune{0x2AD5}},
	{Name: "&subsup;", Codepoints: []rune{0x2AD3}},
	{Name: "&succ;", Codepoints: []rune{0x227B}},
	{Name: "&succapprox;", Codepoints: []rune{0x2AB8}},
	{Name: "&succcurlyeq;", Codepoints: []rune{0x227D}},
	{Name: "&succeq;", Codepoints: []rune{0x2AB0}},
	{Name: "&succnapprox;", Codepoints: []rune{0x2ABA}},
	{Name: "&succneqq;", Codepoints: []rune{0x2AB6}},
	{Name: "&succnsim;", Codepoints: []rune{0x22E9}},
	{Name: "&succsim;", Codepoints: []rune{0x227F}},
	{Name: "&sum;", Codepoints: []rune{0x2211}},
	{Name: "&sung;", Codepoints: []rune{0x266A}},
	{Name: "&sup1", Codepoints: []rune{0x00B9}},
	{Name: "&sup1;", Codepoints: []rune{0x00B9}},
	{Name: "&sup2", Codepoints: []rune{0x00B2}},
	{Name: "&sup2;", Codepoints: []rune{0x00B2}},
	{Name: "&sup3", Codepoints: []rune{0x00B3}},
	{Name: "&sup3;", Codepoints: []rune{0x00B3}},
	{Name: "&sup;", Codepoints: []rune{0x2283}},
	{Name: "&supE;", Codepoints: []rune{0x2AC6}},
	{Name: "&supdot;", Codepoints: []rune{0x2ABE}},
	{Name: "&supdsub;", Codepoints: []rune{0x2AD8}},
	{Name: "&supe;", Codepoints: []rune{0x2287}},
	{Name: "&supedot;", Codepoints: []rune{0x2AC4}},
	{Name: "&suphsol;", Codepoints: []rune{0x27C9}},
	{Name: "&suphsub;", Codepoints: []rune{0x2AD7}},
	{Name: "&suplarr;", Codepoints: []rune{0x297B}},
	{Name: "&supmult;", Codepoints: []rune{0x2AC2}},
	{Name: "&supnE;", Codepoints: []rune{0x2ACC}},
	{Name: "&supne;", Codepoints: []rune{0x228B}},
	{Name: "&supplus;", Codepoints: []rune{0x2AC0}},
	{Name: "&supset;", Codepoints: []rune{0x2283}},
	{Name: "&supseteq;", Codepoints: []rune{0x2287}},
	{Name: "&supseteqq;", Codepoints: []rune{0x2AC6}},
	{Name: "&supsetneq;", Codepoints: []rune{0x228B}},
	{Name: "&supsetneqq;", Codepoints: []rune{0x2ACC}},
	{Name: "&supsim;", Codepoints: []rune{0x2AC8}},
	{Name: "&supsub;", Codepoints: []rune{0x2AD4}},
	{Name: "&supsup;", Codepoints: []rune{0x2AD6}},
	{Name: "&swArr;", Codepoints: []rune{0x21D9}},
	{Name: "&swarhk;", Codepoints: []rune{0x2926}},
	{Name: "&swarr;", Codepoints: []rune{0x2199}},
	{Name: "&swarrow;", Codepoints: []rune{0x2199}},
	{Name: "&swnwar;", Codepoints: []rune{0x292A}},
	{Name: "&szlig", Codepoints: []rune{0x00DF}},
	{Name: "&szlig;", Codepoints: []rune{0x00DF}},
	{Name: "&target;", Codepoints: []rune{0x2316}},
	{Name: "&tau;", Codepoints: []rune{0x03C4}},
	{Name: "&tbrk;", Codepoints: []rune{0x23B4}},
	{Name: "&tcaron;", Codepoints: []rune{0x0165}},
	{Name: "&tcedil;", Codepoints: []rune{0x0163}},
	{Name: "&tcy;", Codepoints: []rune{0x0442}},
	{Name: "&tdot;", Codepoints: []rune{0x20DB}},
	{Name: "&telrec;", Codepoints: []rune{0x2315}},
	{Name: "&tfr;", Codepoints: []rune{0x1D531}},
	{Name: "&there4;", Codepoints: []rune{0x2234}},
	{Name: "&therefore;", Codepoints: []rune{0x2234}},
	{Name: "&theta;", Codepoints: []rune{0x03B8}},
	{Name: "&thetasym;", Codepoints: []rune{0x03D1}},
	{Name: "&thetav;", Codepoints: []rune{0x03D1}},
	{Name: "&thickapprox;", Codepoints: []rune{0x2248}},
	{Name: "&thicksim;", Codepoints: []rune{0x223C}},
	{Name: "&thinsp;", Codepoints: []rune{0x2009}},
	{Name: "&thkap;", Codepoints: []rune{0x2248}},
	{Name: "&thksim;", Codepoints: []rune{0x223C}},
	{Name: "&thorn", Codepoints: []rune{0x00FE}},
	{Name: "&thorn;", Codepoints: []rune{0x00FE}},
	{Name: "&tilde;", Codepoints: []rune{0x02DC}},
	{Name: "&times", Codepoints: []rune{0x00D7}},
	{Name: "&times;", Codepoints: []rune{0x00D7}},
	{Name: "&timesb;", Codepoints: []rune{0x22A0}},
	{Name: "&timesbar;", Codepoints: []rune{0x2A31}},
	{Name: "&timesd;", Codepoints: []rune{0x2A30}},
	{Name: "&tint;", Codepoints: []rune{0x222D}},
	{Name: "&toea;", Codepoints: []rune{0x2928}},
	{Name: "&top;", Codepoints: []rune{0x22A4}},
	{Name: "&topbot;", Codepoints: []rune{0x2336}},
	{Name: "&topcir;", Codepoints: []rune{0x2AF1}},
	{Name: "&topf;", Codepoints: []rune{0x1D565}},
	{Name: "&topfork;", Codepoints: []rune{0x2ADA}},
	{Name: "&tosa;", Codepoints: []rune{0x2929}},
	{Name: "&tprime;", Codepoints: []rune{0x2034}},
	{Name: "&trade;", Codepoints: []rune{0x2122}},
	{Name: "&triangle;", Codepoints: []rune{0x25B5}},
	{Name: "&triangledown;", Codepoints: []rune{0x25BF}},
	{Name: "&triangleleft;", Codepoints: []rune{0x25C3}},
	{Name: "&trianglelefteq;", Codepoints: []rune{0x22B4}},
	{Name: "&triangleq;", Codepoints: []rune{0x225C}},
	{Name: "&triangleright;", Codepoints: []rune{0x25B9}},
	{Name: "&trianglerighteq;", Codepoints: []rune{0x22B5}},
	{Name: "&tridot;", Codepoints: []rune{0x25EC}},
	{Name: "&trie;", Codepoints: []rune{0x225C}},
	{Name: "&triminus;", Codepoints: []rune{0x2A3A}},
	{Name: "&triplus;", Codepoints: []rune{0x2A39}},
	{Name: "&trisb;", Codepoints: []rune{0x29CD}},
	{Name: "&tritime;", Codepoints: []rune{0x2A3B}},
	{Name: "&trpezium;", Codepoints: []rune{0x23E2}},
	{Name: "&tscr;", Codepoints: []rune{0x1D4C9}},
	{Name: "&tscy;", Codepoints: []rune{0x0446}},
	{Name: "&tshcy;", Codepoints: []rune{0x045B}},
	{Name: "&tstrok;", Codepoints: []rune{0x0167}},
	{Name: "&twixt;", Codepoints: []rune{0x226C}},
	{Name: "&twoheadleftarrow;", Codepoints: []rune{0x219E}},
	{Name: "&twoheadrightarrow;", Codepoints: []rune{0x21A0}},
	{Name: "&uArr;", Codepoints: []rune{0x21D1}},
	{Name: "&uHar;", Codepoints: []rune{0x2963}},
	{Name: "&uacute", Codepoints: []rune{0x00FA}},
	{Name: "&uacute;", Codepoints: []rune{0x00FA}},
	{Name: "&uarr;", Codepoints: []rune{0x2191}},
	{Name: "&ubrcy;", Codepoints: []rune{0x045E}},
	{Name: "&ubreve;", Codepoints: []rune{0x016D}},
	{Name: "&ucirc", Codepoints: []rune{0x00FB}},
	{Name: "&ucirc;", Codepoints: []rune{0x00FB}},
	{Name: "&ucy;", Codepoints: []rune{0x0443}},
	{Name: "&udarr;", Codepoints: []rune{0x21C5}},
	{Name: "&udblac;", Codepoints: []rune{0x0171}},
	{Name: "&udhar;", Codepoints: []rune{0x296E}},
	{Name: "&ufisht;", Codepoints: []rune{0x297E}},
	{Name: "&ufr;", Codepoints: []rune{0x1D532}},
	{Name: "&ugrave", Codepoints: []rune{0x00F9}},
	{Name: "&ugrave;", Codepoints: []rune{0x00F9}},
	{Name: "&uharl;", Codepoints: []rune{0x21BF}},
	{Name: "&uharr;", Codepoints: []rune{0x21BE}},
	{Name: "&uhblk;", Codepoints: []rune{0x2580}},
	{Name: "&ulcorn;", Codepoints: []rune{0x231C}},
	{Name: "&ulcorner;", Codepoints: []rune{0x231C}},
	{Name: "&ulcrop;", Codepoints: []rune{0x230F}},
	{Name: "&ultri;", Codepoints: []rune{0x25F8}},
	{Name: "&umacr;", Codepoints: []rune{0x016B}},
	{Name: "&uml", Codepoints: []rune{0x00A8}},
	{Name: "&uml;", Codepoints: []rune{0x00A8}},
	{Name: "&uogon;", Codepoints: []rune{0x0173}},
	{Name: "&uopf;", Codepoints: []rune{0x1D566}},
	{Name: "&uparrow;", Codepoints: []rune{0x2191}},
	{Name: "&updownarrow;", Codepoints: []rune{0x2195}},
	{Name: "&upharpoonleft;", Codepoints: []rune{0x21BF}},
	{Name: "&upharpoonright;", Codepoints: []rune{0x21BE}},
	{Name: "&uplus;", Codepoints: []rune{0x228E}},
	{Name: "&upsi;", Codepoints: []rune{0x03C5}},
	{Name: "&upsih;", Codepoints: []rune{0x03D2}},
	{Name: "&upsilon;", Codepoints: []rune{0x03C5}},
	{Name: "&upuparrows;", Codepoints: []rune{0x21C8}},
	{Name: "&urcorn;", Codepoints: []rune{0x231D}},
	{Name: "&urcorner;", Codepoints: []rune{0x231D}},
	{Name: "&urcrop;", Codepoints: []rune{0x230E}},
	{Name: "&uring;", Codepoints: []rune{0x016F}},
	{Name: "&urtri;", Codepoints: []rune{0x25F9}},
	{Name: "&uscr;", Codepoints: []rune{0x1D4CA}},
	{Name: "&utdot;", Codepoints: []rune{0x22F0}},
	{Name: "&utilde;", Codepoints: []rune{0x0169}},
	{Name: "&utri;", Codepoints: []rune{0x25B5}},
	{Name: "&utrif;", Codepoints: []rune{0x25B4}},
	{Name: "&uuarr;", Codepoints: []rune{0x21C8}},
	{Name: "&uuml", Codepoints: []rune{0x00FC}},
	{Name: "&uuml;", Codepoints: []rune{0x00FC}},
	{Name: "&uwangle;", Codepoints: []rune{0x29A7}},
	{Name: "&vArr;", Codepoints: []rune{0x21D5}},
	{Name: "&vBar;", Codepoints: []rune{0x2AE8}},
	{Name: "&vBarv;", Codepoints: []rune{0x2AE9}},
	{Name: "&vDash;", Codepoints: []rune{0x22A8}},
	{Name: "&vangrt;", Codepoints: []rune{0x299C}},
	{Name: "&varepsilon;", Codepoints: []rune{0x03F5}},
	{Name: "&varkappa;", Codepoints: []rune{0x03F0}},
	{Name: "&varnothing;", Codepoints: []rune{0x2205}},
	{Name: "&varphi;", Codepoints: []rune{0x03D5}},
	{Name: "&varpi;", Codepoints: []rune{0x03D6}},
	{Name: "&varpropto;", Codepoints: []rune{0x221D}},
	{Name: "&varr;", Codepoints: []rune{0x2195}},
	{Name: "&varrho;", Codepoints: []rune{0x03F1}},
	{Name: "&varsigma;", Codepoints: []rune{0x03C2}},
	{Name: "&varsubsetneq;", Codepoints: []rune{0x228A, 0xFE00}},
	{Name: "&varsubsetneqq;", Codepoints: []rune{0x2ACB, 0xFE00}},
	{Name: "&varsupsetneq;", Codepoints: []rune{0x228B, 0xFE00}},
	{Name: "&varsupsetneqq;", Codepoints: []rune{0x2ACC, 0xFE00}},
	{Name: "&vartheta;", Codepoints: []rune{0x03D1}},
	{Name: "&vartriangleleft;", Codepoints: []rune{0x22B2}},
	{Name: "&vartriangleright;", Codepoints: []rune{0x22B3}},
	{Name: "&vcy;", Codepoints: []rune{0x0432}},
	{Name: "&vdash;", Codepoints: []rune{0x22A2}},
	{Name: "&vee;", Codepoints: []rune{0x2228}},
	{Name: "&veebar;", Codepoints: []rune{0x22BB}},
	{Name: "&veeeq;", Codepoints: []rune{0x225A}},
	{Name: "&vellip;", Codepoints: []rune{0x22EE}},
	{Name: "&verbar;", Codepoints: []rune{0x007C}},
	{Name: "&vert;", Codepoints: []rune{0x007C}},
	{Name: "&vfr;", Codepoints: []rune{0x1D533}},
	{Name: "&vltri;", Codepoints: []rune{0x22B2}},
	{Name: "&vnsub;", Codepoints: []rune{0x2282, 0x20D2}},
	{Name: "&vnsup;", Codepoints: []rune{0x2283, 0x20D2}},
	{Name: "&vopf;", Codepoints: []rune{0x1D567}},
	{Name: "&vprop;", Codepoints: []rune{0x221D}},
	{Name: "&vrtri;", Codepoints: []rune{0x22B3}},
	{Name: "&vscr;", Codepoints: []rune{0x1D4CB}},
	{Name: "&vsubnE;", Codepoints: []rune{0x2ACB, 0xFE00}},
	{Name: "&vsubne;", Codepoints: []rune{0x228A, 0xFE00}},
	{Name: "&vsupnE;", Codepoints: []rune{0x2ACC, 0xFE00}},
	{Name: "&vsupne;", Codepoints: []rune{0x228B, 0xFE00}},
	{Name: "&vzigzag;", Codepoints: []rune{0x299A}},
	{Name: "&wcirc;", Codepoints: []rune{0x0175}},
	{Name: "&wedbar;", Codepoints: []rune{0x2A5F}},
	{Name: "&wedge;", Codepoints: []rune{0x2227}},
	{Name: "&wedgeq;", Codepoints: []rune{0x2259}},
	{Name: "&weierp;", Codepoints: []rune{0x2118}},
	{Name: "&wfr;", Codepoints: []rune{0x1D534}},
	{Name: "&wopf;", Codepoints: []rune{0x1D568}},
	{Name: "&wp;", Codepoints: []rune{0x2118}},
	{Name: "&wr;", Codepoints: []rune{0x2240}},
	{Name: "&wreath;", Codepoints: []rune{0x2240}},
	{Name: "&wscr;", Codepoints: []rune{0x1D4CC}},
	{Name: "&xcap;", Codepoints: []rune{0x22C2}},
	{Name: "&xcirc;", Codepoints: []rune{0x25EF}},
	{Name: "&xcup;", Codepoints: []rune{0x22C3}},
	{Name: "&xdtri;", Codepoints: []rune{0x25BD}},
	{Name: "&xfr;", Codepoints: []rune{0x1D535}},
	{Name: "&xhArr;", Codepoints: []rune{0x27FA}},
	{Name: "&xharr;", Codepoints: []rune{0x27F7}},
	{Name: "&xi;", Codepoints: []rune{0x03BE}},
	{Name: "&xlArr;", Codepoints: []rune{0x27F8}},
	{Name: "&xlarr;", Codepoints: []rune{0x27F5}},
	{Name: "&xmap;", Codepoints: []rune{0x27FC}},
	{Name: "&xnis;", Codepoints: []rune{0x22FB}},
	{Name: "&xodot;", Codepoints: []rune{0x2A00}},
	{Name: "&xopf;", Codepoints: []rune{0x1D569}},
	{Name: "&xoplus;", Codepoints: []rune{0x2A01}},
	{Name: "&xotime;", Codepoints: []rune{0x2A02}},
	{Name: "&xrArr;", Codepoints: []rune{0x27F9}},
	{Name: "&xrarr;", Codepoints: []rune{0x27F6}},
	{Name: "&xscr;", Codepoints: []rune{0x1D4CD}},
	{Name: "&xsqcup;", Codepoints: []rune{0x2A06}},
	{Name: "&xuplus;", Codepoints: []rune{0x2A04}},
	{Name: "&xutri;", Codepoints: []rune{0x25B3}},
	{Name: "&xvee;", Codepoints: []rune{0x22C1}},
	{Name: "&xwedge;", Codepoints: []rune{0x22C0}},
	{Name: "&yacute", Codepoints: []rune{0x00FD}},
	{Name: "&yacute;", Codepoints: []rune{0x00FD}},
	{Name: "&yacy;", Codepoints: []rune{0x044F}},
	{Name: "&ycirc;", Codepoints: []rune{0x0177}},
	{Name: "&ycy;", Codepoints: []rune{0x044B}},
	{Name: "&yen", Codepoints: []rune{0x00A5}},
	{Name: "&yen;", Codepoints: []rune{0x00A5}},
	{Name: "&yfr;", Codepoints: []rune{0x1D536}},
	{Name: "&yicy;", Codepoints: []rune{0x0457}},
	{Name: "&yopf;", Codepoints: []rune{0x1D56A}},
	{Name: "&yscr;", Codepoints: []rune{0x1D4CE}},
	{Name: "&yucy;", Codepoints: []rune{0x044E}},
	{Name: "&yuml", Codepoints: []rune{0x00FF}},
	{Name: "&yuml;", Codepoints: []rune{0x00FF}},
	{Name: "&zacute;", Codepoints: []rune{0x017A}},
	{Name: "&zcaron;", Codepoints: []rune{0x017E}},
	{Name: "&zcy;", Codepoints: []rune{0x0437}},
	{Name: "&zdot;", Codepoints: []rune{0x017C}},
	{Name: "&zeetrf;", Codepoints: []rune{0x2128}},
	{Name: "&zeta;", Codepoints: []rune{0x03B6}},
	{Name: "&zfr;", Codepoints: []rune{0x1D537}},
	{Name: "&zhcy;", Codepoints: []rune{0x0436}},
	{Name: "&zigrarr;", Codepoints: []rune{0x21DD}},
	{Name: "&zopf;", Codepoints: []rune{0x1D56B}},
	{Name: "&zscr;", Codepoints: []rune{0x1D4CF}},
	{Name: "&zwj;", Codepoints: []rune{0x200D}},
	{Name: "&zwnj;", Codepoints: []rune{0x200C}},
}

// html4Names lists the references HTML 4.01 defines: exactly the names
// that HTML5 still accepts without a trailing semicolon, in both forms.
var html4Names = []string{
	"&AElig", "&AElig;",
	"&AMP", "&AMP;",
	"&Aacute", "&Aacute;",
	"&Acirc", "&Acirc;",
	"&Agrave", "&Agrave;",
	"&Aring", "&Aring;",
	"&Atilde", "&Atilde;",
	"&Auml", "&Auml;",
	"&COPY", "&COPY;",
	"&Ccedil", "&Ccedil;",
	"&ETH", "&ETH;",
	"&Eacute", "&Eacute;",
	"&Ecirc", "&Ecirc;",
	"&Egrave", "&Egrave;",
	"&Euml", "&Euml;",
	"&GT", "&GT;",
	"&Iacute", "&Iacute;",
	"&Icirc", "&Icirc;",
	"&Igrave", "&Igrave;",
	"&Iuml", "&Iuml;",
	"&LT", "&LT;",
	"&Ntilde", "&Ntilde;",
	"&Oacute", "&Oacute;",
	"&Ocirc", "&Ocirc;",
	"&Ograve", "&Ograve;",
	"&Oslash", "&Oslash;",
	"&Otilde", "&Otilde;",
	"&Ouml", "&Ouml;",
	"&QUOT", "&QUOT;",
	"&REG", "&REG;",
	"&THORN", "&THORN;",
	"&Uacute", "&Uacute;",
	"&Ucirc", "&Ucirc;",
	"&Ugrave", "&Ugrave;",
	"&Uuml", "&Uuml;",
	"&Yacute", "&Yacute;",
	"&aacute", "&aacute;",
	"&acirc", "&acirc;",
	"&acute", "&acute;",
	"&aelig", "&aelig;",
	"&agrave", "&agrave;",
	"&amp", "&amp;",
	"&aring", "&aring;",
	"&atilde", "&atilde;",
	"&auml", "&auml;",
	"&brvbar", "&brvbar;",
	"&ccedil", "&ccedil;",
	"&cedil", "&cedil;",
	"&cent", "&cent;",
	"&copy", "&copy;",
	"&curren", "&curren;",
	"&deg", "&deg;",
	"&divide", "&divide;",
	"&eacute", "&eacute;",
	"&ecirc", "&ecirc;",
	"&egrave", "&egrave;",
	"&eth", "&eth;",
	"&euml", "&euml;",
	"&frac12", "&frac12;",
	"&frac14", "&frac14;",
	"&frac34", "&frac34;",
	"&gt", "&gt;",
	"&iacute", "&iacute;",
	"&icirc", "&icirc;",
	"&iexcl", "&iexcl;",
	"&igrave", "&igrave;",
	"&iquest", "&iquest;",
	"&iuml", "&iuml;",
	"&laquo", "&laquo;",
	"&lt", "&lt;",
	"&macr", "&macr;",
	"&micro", "&micro;",
	"&middot", "&middot;",
	"&nbsp", "&nbsp;",
	"&not", "&not;",
	"&ntilde", "&ntilde;",
	"&oacute", "&oacute;",
	"&ocirc", "&ocirc;",
	"&ograve", "&ograve;",
	"&ordf", "&ordf;",
	"&ordm", "&ordm;",
	"&oslash", "&oslash;",
	"&otilde", "&otilde;",
	"&ouml", "&ouml;",
	"&para", "&para;",
	"&plusmn", "&plusmn;",
	"&pound", "&pound;",
	"&quot", "&quot;",
	"&raquo", "&raquo;",
	"&reg", "&reg;",
	"&sect", "&sect;",
	"&shy", "&shy;",
	"&sup1", "&sup1;",
	"&sup2", "&sup2;",
	"&sup3", "&sup3;",
	"&szlig", "&szlig;",
	"&thorn", "&thorn;",
	"&times", "&times;",
	"&uacute", "&uacute;",
	"&ucirc", "&ucirc;",
	"&ugrave", "&ugrave;",
	"&uml", "&uml;",
	"&uuml", "&uuml;",
	"&yacute", "&yacute;",
	"&yen", "&yen;",
	"&yuml", "&yuml;",
}
